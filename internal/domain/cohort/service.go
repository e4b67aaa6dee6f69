package cohort

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ehr/fhirquery/internal/domain/nlq"
	"github.com/ehr/fhirquery/internal/platform/fhir"
	"github.com/ehr/fhirquery/internal/platform/nlp"
)

// ErrEmptyQuery is returned for blank query text.
var ErrEmptyQuery = errors.New("query is empty")

// SearchResult is the response of a cohort search.
type SearchResult struct {
	Query        string          `json:"query"`
	Parsed       nlq.ParsedQuery `json:"parsed"`
	FHIRResponse fhir.Bundle     `json:"fhirResponse"`
}

// NewInterpreter builds an interpreter over the dataset's vocabulary using
// the built-in linguistic engine and the default synonym and ignore tables.
// Condition names are registered as nouns so the engine neither mis-tags
// nor lemmatizes them.
func NewInterpreter(d *Dataset) *nlq.Interpreter {
	vocab := d.Vocabulary()
	engine := nlp.New(nlp.WithNouns(vocab.Terms()...))
	return nlq.NewInterpreter(engine, nlq.DefaultTables(vocab))
}

type Service struct {
	interp *nlq.Interpreter
	data   *Dataset
	logger zerolog.Logger
}

func NewService(interp *nlq.Interpreter, data *Dataset, logger zerolog.Logger) *Service {
	return &Service{interp: interp, data: data, logger: logger}
}

// Search interprets text, filters the dataset and synthesizes the result
// bundle. The only error is ErrEmptyQuery.
func (s *Service) Search(ctx context.Context, text string) (*SearchResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyQuery
	}

	parsed := s.interp.Parse(text)
	bundle := Synthesize(Filter(parsed, s.data.Records()))

	s.logger.Debug().
		Strs("conditions", parsed.Conditions).
		Str("age_operator", string(parsed.AgeFilter.Operator)).
		Int("total", bundle.Total).
		Msg("cohort search")

	return &SearchResult{
		Query:        text,
		Parsed:       parsed,
		FHIRResponse: bundle,
	}, nil
}

func (s *Service) Dataset() *Dataset {
	return s.data
}
