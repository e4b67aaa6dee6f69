package nlp

import "strings"

// closedClass lists function words and frequent query words with a fixed tag.
var closedClass = map[string]PartOfSpeech{
	// determiners
	"a": DET, "an": DET, "the": DET, "all": DET, "any": DET, "some": DET,
	"every": DET, "each": DET, "no": DET, "this": DET, "that": DET,
	"these": DET, "those": DET, "both": DET, "either": DET, "neither": DET,
	"another": DET,

	// pronouns
	"i": PRON, "me": PRON, "my": PRON, "we": PRON, "us": PRON, "our": PRON,
	"you": PRON, "your": PRON, "he": PRON, "him": PRON, "his": PRON,
	"she": PRON, "her": PRON, "it": PRON, "its": PRON, "they": PRON,
	"them": PRON, "their": PRON, "who": PRON, "whom": PRON, "whose": PRON,
	"which": PRON, "what": PRON, "anyone": PRON, "anybody": PRON,
	"someone": PRON, "somebody": PRON, "everyone": PRON, "everybody": PRON,
	"nobody": PRON,

	// adpositions
	"over": ADP, "under": ADP, "with": ADP, "without": ADP, "of": ADP,
	"in": ADP, "on": ADP, "at": ADP, "by": ADP, "for": ADP, "from": ADP,
	"to": ADP, "into": ADP, "about": ADP, "above": ADP, "below": ADP,
	"between": ADP, "than": ADP, "within": ADP, "among": ADP, "after": ADP,
	"before": ADP, "since": ADP, "during": ADP, "through": ADP, "per": ADP,
	"like": ADP,

	// conjunctions
	"and": CCONJ, "or": CCONJ, "but": CCONJ, "nor": CCONJ,
	"if": SCONJ, "because": SCONJ, "while": SCONJ, "whether": SCONJ,

	// auxiliaries
	"is": AUX, "are": AUX, "was": AUX, "were": AUX, "be": AUX, "been": AUX,
	"being": AUX, "am": AUX, "has": AUX, "have": AUX, "had": AUX, "do": AUX,
	"does": AUX, "did": AUX, "can": AUX, "could": AUX, "will": AUX,
	"would": AUX, "should": AUX, "may": AUX, "might": AUX, "must": AUX,
	"shall": AUX,

	// particles, adverbs, interjections
	"not": PART, "'s": PART, "’s": PART,
	"also": ADV, "only": ADV, "very": ADV, "just": ADV, "more": ADV,
	"less": ADV, "most": ADV, "least": ADV, "too": ADV, "how": ADV,
	"when": ADV, "where": ADV, "why": ADV, "currently": ADV, "now": ADV,
	"please": INTJ, "hi": INTJ, "hello": INTJ,

	// open-class words that show up in cohort queries
	"older": ADJ, "younger": ADJ, "old": ADJ, "young": ADJ, "elderly": ADJ,
	"male": ADJ, "female": ADJ, "senior": ADJ, "adult": ADJ,
	"retrieve": VERB, "tell": VERB, "pull": VERB, "bring": VERB,
	"need": VERB, "want": VERB, "suffer": VERB, "suffers": VERB,
	"suffering": VERB, "diagnosed": VERB, "having": VERB, "living": VERB,
	"aged": VERB,

	// number words
	"one": NUM, "two": NUM, "three": NUM, "four": NUM, "five": NUM,
	"six": NUM, "seven": NUM, "eight": NUM, "nine": NUM, "ten": NUM,
	"twenty": NUM, "thirty": NUM, "forty": NUM, "fifty": NUM, "sixty": NUM,
	"seventy": NUM, "eighty": NUM, "ninety": NUM, "hundred": NUM,
}

// imperatives are tagged VERB when they open a clause and NOUN otherwise
// ("list covid patients" vs "patients on the waiting list").
var imperatives = map[string]bool{
	"show": true, "list": true, "find": true, "give": true, "get": true,
	"search": true, "display": true, "fetch": true, "return": true,
	"count": true, "look": true, "query": true,
}

// adjectiveSuffixes mark open-class words as adjectives when no lexicon
// entry exists.
var adjectiveSuffixes = []string{"ic", "ive", "ous", "ful", "less", "able", "ible"}

// nounOverrides are words that carry an adjective suffix but are nouns.
var nounOverrides = map[string]bool{
	"clinic": true, "music": true, "topic": true, "logic": true,
	"panic": true, "tonic": true, "antibiotic": true, "table": true,
	"cable": true, "vegetable": true, "bible": true, "olive": true,
	"motive": true, "relative": true, "sedative": true, "laxative": true,
	"sedatives": true, "antibiotics": true, "relatives": true,
}

// irregularLemmas maps inflected forms that the suffix rules get wrong.
var irregularLemmas = map[string]string{
	"people": "person", "men": "man", "women": "woman",
	"children": "child", "feet": "foot", "teeth": "tooth", "mice": "mouse",
	"older": "old", "younger": "young", "elder": "old",
	"is": "be", "are": "be", "was": "be", "were": "be", "am": "be",
	"been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do",
	"gave": "give", "given": "give", "found": "find", "got": "get",
	"shown": "show", "showed": "show", "brought": "bring", "told": "tell",
	"diagnoses": "diagnosis", "analyses": "analysis",
}

// invariantLemmas end in "s" but are already in base form.
var invariantLemmas = map[string]bool{
	"diabetes": true, "herpes": true, "rabies": true, "measles": true,
	"mumps": true, "scabies": true, "rickets": true, "shingles": true,
	"lupus": true, "tetanus": true, "aids": true, "news": true,
	"series": true, "species": true, "this": true, "his": true,
	"its": true, "us": true, "less": true,
}

func hasAdjectiveSuffix(word string) bool {
	if nounOverrides[word] {
		return false
	}
	for _, suf := range adjectiveSuffixes {
		if len(word) > len(suf)+2 && strings.HasSuffix(word, suf) {
			return true
		}
	}
	return false
}
