// Package nlp is a small deterministic linguistic engine: tokenization,
// lexicon-driven part-of-speech tagging, rule-based lemmatization and
// noun-phrase chunking for short English queries.
package nlp

import "strings"

// Engine analyzes text. Implementations must be deterministic for identical
// input and safe for concurrent use.
type Engine interface {
	// Tokenize returns every token of text with lemma and part-of-speech.
	Tokenize(text string) []Token
	// NounChunks returns the noun phrases of text, drawn from the same
	// tokenization Tokenize produces.
	NounChunks(text string) []Chunk
}

// Pipeline is the built-in Engine. It is immutable after New.
type Pipeline struct {
	lexicon map[string]PartOfSpeech
	nouns   map[string]struct{}
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithNouns registers words that are always tagged NOUN and never
// lemmatized, e.g. the names of known conditions.
func WithNouns(words ...string) Option {
	return func(p *Pipeline) {
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			p.nouns[w] = struct{}{}
			delete(p.lexicon, w)
		}
	}
}

// WithLexicon adds or overrides lexicon entries.
func WithLexicon(entries map[string]PartOfSpeech) Option {
	return func(p *Pipeline) {
		for w, pos := range entries {
			p.lexicon[strings.ToLower(w)] = pos
		}
	}
}

// New builds a Pipeline from the default English lexicon plus opts.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		lexicon: make(map[string]PartOfSpeech, len(closedClass)),
		nouns:   make(map[string]struct{}),
	}
	for w, pos := range closedClass {
		p.lexicon[w] = pos
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tokenize implements Engine.
func (p *Pipeline) Tokenize(text string) []Token {
	tokens := tokenize(text)
	p.tag(tokens)
	p.lemmatize(tokens)
	return tokens
}

// NounChunks implements Engine.
func (p *Pipeline) NounChunks(text string) []Chunk {
	return Chunks(p.Tokenize(text))
}
