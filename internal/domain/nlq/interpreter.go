// Package nlq turns short free-text cohort queries into a ParsedQuery of
// canonical conditions and an age constraint.
package nlq

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ehr/fhirquery/internal/platform/nlp"
)

// Interpreter extracts conditions and age filters from query text. It holds
// only read-only state and is safe for concurrent use.
type Interpreter struct {
	engine nlp.Engine
	tables Tables
}

func NewInterpreter(engine nlp.Engine, tables Tables) *Interpreter {
	return &Interpreter{engine: engine, tables: tables}
}

// Parse builds the ParsedQuery for text.
func (in *Interpreter) Parse(text string) ParsedQuery {
	return NewParsedQuery(in.ExtractConditions(text), ExtractAgeFilter(text))
}

// ExtractConditions returns the canonical conditions mentioned in text in
// order of first discovery. Noun chunks are scanned first; only when they
// yield nothing are all noun and adjective tokens scanned, which recovers
// bare predicate adjectives such as "diabetic".
func (in *Interpreter) ExtractConditions(text string) []string {
	lowered := cases.Lower(language.Und).String(text)
	found := NewOrderedSet[string]()

	for _, chunk := range in.engine.NounChunks(lowered) {
		for _, tok := range chunk {
			in.collect(found, tok)
		}
	}

	if found.Len() == 0 {
		for _, tok := range in.engine.Tokenize(lowered) {
			if tok.POS == nlp.NOUN || tok.POS == nlp.ADJ {
				in.collect(found, tok)
			}
		}
	}

	return found.Values()
}

func (in *Interpreter) collect(found *OrderedSet[string], tok nlp.Token) {
	if in.tables.Ignore.Contains(tok.Text) {
		return
	}
	canonical := in.tables.Synonyms.Normalize(tok.Lemma)
	if in.tables.Vocabulary.Contains(canonical) {
		found.Add(canonical)
	}
}

// Tables returns the lookup tables the interpreter was built with.
func (in *Interpreter) Tables() Tables {
	return in.tables
}
