package nlp

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// tokenize splits text into word, clitic and punctuation tokens. Word tokens
// are maximal runs of letters, digits and underscores. An apostrophe directly
// following a word and followed by letters starts a clitic token ("'s").
// Every other non-space rune becomes a single punctuation token. Lemma and
// POS are left empty.
func tokenize(text string) []Token {
	text = norm.NFKC.String(text)

	var tokens []Token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case unicode.IsSpace(r):
			i += size
			continue

		case isWordRune(r):
			start := i
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if !isWordRune(r) {
					break
				}
				i += size
			}
			tokens = append(tokens, Token{Text: text[start:i], Index: len(tokens), Start: start, End: i})

		case isApostrophe(r) && followsWord(tokens, i) && nextIsLetter(text, i+size):
			start := i
			i += size
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if !unicode.IsLetter(r) {
					break
				}
				i += size
			}
			tokens = append(tokens, Token{Text: text[start:i], Index: len(tokens), Start: start, End: i})

		default:
			tokens = append(tokens, Token{Text: text[i : i+size], Index: len(tokens), Start: i, End: i + size})
			i += size
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func followsWord(tokens []Token, at int) bool {
	if len(tokens) == 0 {
		return false
	}
	last := tokens[len(tokens)-1]
	if last.End != at {
		return false
	}
	r, _ := utf8.DecodeRuneInString(last.Text)
	return isWordRune(r)
}

func nextIsLetter(text string, at int) bool {
	if at >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[at:])
	return unicode.IsLetter(r)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
