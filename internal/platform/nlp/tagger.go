package nlp

import "strings"

// tag assigns a part-of-speech to every token in place.
func (p *Pipeline) tag(tokens []Token) {
	for i := range tokens {
		tokens[i].POS = p.tagOne(tokens, i)
	}
}

func (p *Pipeline) tagOne(tokens []Token, i int) PartOfSpeech {
	word := strings.ToLower(tokens[i].Text)

	if !startsWithWordRune(word) && !isClitic(word) {
		return PUNCT
	}
	if isDigits(word) {
		return NUM
	}
	if pos, ok := p.lexicon[word]; ok {
		return pos
	}
	if isClitic(word) {
		return PART
	}
	if _, ok := p.nouns[word]; ok {
		return NOUN
	}
	if imperatives[word] {
		if opensClause(tokens, i) {
			return VERB
		}
		return NOUN
	}
	if hasAdjectiveSuffix(word) {
		return ADJ
	}
	if len(word) > 4 && strings.HasSuffix(word, "ly") {
		return ADV
	}
	return NOUN
}

// opensClause reports whether token i is the first word of the input, follows
// punctuation, or follows a pronoun or auxiliary ("can you show ...").
func opensClause(tokens []Token, i int) bool {
	if i == 0 {
		return true
	}
	switch tokens[i-1].POS {
	case PUNCT, PRON, AUX, INTJ:
		return true
	}
	return false
}

func startsWithWordRune(s string) bool {
	for _, r := range s {
		return isWordRune(r)
	}
	return false
}

func isClitic(s string) bool {
	return strings.HasPrefix(s, "'") || strings.HasPrefix(s, "’")
}
