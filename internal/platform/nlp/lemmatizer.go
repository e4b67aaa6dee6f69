package nlp

import "strings"

// lemmatize fills in Lemma for every token. Lemmas are lower-case.
func (p *Pipeline) lemmatize(tokens []Token) {
	for i := range tokens {
		tokens[i].Lemma = p.lemma(strings.ToLower(tokens[i].Text), tokens[i].POS)
	}
}

func (p *Pipeline) lemma(word string, pos PartOfSpeech) string {
	if l, ok := irregularLemmas[word]; ok {
		return l
	}
	if _, ok := p.nouns[word]; ok || invariantLemmas[word] {
		return word
	}

	switch pos {
	case NOUN, PROPN:
		return singular(word)
	case VERB:
		return baseVerb(word)
	}
	return word
}

func singular(word string) string {
	switch {
	case len(word) > 4 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "sses"),
		strings.HasSuffix(word, "shes"),
		strings.HasSuffix(word, "xes"),
		strings.HasSuffix(word, "zzes"):
		return word[:len(word)-2]
	case len(word) > 3 && strings.HasSuffix(word, "s"):
		switch word[len(word)-2] {
		case 's', 'u', 'i':
			return word
		}
		return word[:len(word)-1]
	}
	return word
}

func baseVerb(word string) string {
	switch {
	case len(word) > 4 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case len(word) > 3 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return word[:len(word)-1]
	}
	return word
}
