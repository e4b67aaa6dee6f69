package nlq

import (
	"strings"

	"github.com/ehr/fhirquery/internal/platform/nlp"
)

// stubEngine returns canned analyses keyed by the exact input text.
type stubEngine struct {
	tokens map[string][]nlp.Token
	chunks map[string][]nlp.Chunk
	calls  map[string]int
}

func newStubEngine() *stubEngine {
	return &stubEngine{
		tokens: make(map[string][]nlp.Token),
		chunks: make(map[string][]nlp.Chunk),
		calls:  make(map[string]int),
	}
}

// add registers text as whitespace-separated "surface/lemma/POS" triples.
// chunkSpans are [start, end) token ranges that form noun chunks.
func (s *stubEngine) add(text string, triples string, chunkSpans ...[2]int) {
	var toks []nlp.Token
	for i, f := range strings.Fields(triples) {
		parts := strings.Split(f, "/")
		toks = append(toks, nlp.Token{Text: parts[0], Lemma: parts[1], POS: nlp.PartOfSpeech(parts[2]), Index: i})
	}
	s.tokens[text] = toks
	var chunks []nlp.Chunk
	for _, span := range chunkSpans {
		chunks = append(chunks, nlp.Chunk(toks[span[0]:span[1]]))
	}
	s.chunks[text] = chunks
}

func (s *stubEngine) Tokenize(text string) []nlp.Token {
	s.calls["tokenize"]++
	return s.tokens[text]
}

func (s *stubEngine) NounChunks(text string) []nlp.Chunk {
	s.calls["chunks"]++
	return s.chunks[text]
}
