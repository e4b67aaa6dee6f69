package cohort

import (
	"context"
	"fmt"

	"github.com/ehr/fhirquery/internal/domain/nlq"
)

// RecordSource loads the patient dataset once at startup.
type RecordSource interface {
	LoadRecords(ctx context.Context) ([]PatientRecord, error)
}

type staticSource struct {
	records []PatientRecord
}

// NewStaticSource serves records from memory. With no arguments it serves
// SeedRecords.
func NewStaticSource(records ...PatientRecord) RecordSource {
	if len(records) == 0 {
		records = SeedRecords()
	}
	return &staticSource{records: records}
}

func (s *staticSource) LoadRecords(_ context.Context) ([]PatientRecord, error) {
	out := make([]PatientRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Dataset is an immutable snapshot of patient records and the condition
// vocabulary derived from them.
type Dataset struct {
	records    []PatientRecord
	vocabulary nlq.Vocabulary
}

// NewDataset snapshots records. The slice header is copied; condition
// slices are shared and must not be modified by the caller afterwards.
func NewDataset(records []PatientRecord) *Dataset {
	cp := make([]PatientRecord, len(records))
	copy(cp, records)
	return &Dataset{
		records:    cp,
		vocabulary: nlq.NewVocabulary(ConditionTerms(cp)...),
	}
}

// LoadDataset reads every record from src into a Dataset.
func LoadDataset(ctx context.Context, src RecordSource) (*Dataset, error) {
	records, err := src.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient records: %w", err)
	}
	return NewDataset(records), nil
}

// Records returns the records in load order. Callers must treat the result
// as read-only.
func (d *Dataset) Records() []PatientRecord {
	return d.records
}

func (d *Dataset) Vocabulary() nlq.Vocabulary {
	return d.vocabulary
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// ConditionTerms lists every distinct condition across records in order of
// first appearance.
func ConditionTerms(records []PatientRecord) []string {
	set := nlq.NewOrderedSet[string]()
	for _, r := range records {
		for _, c := range r.Conditions {
			set.Add(c)
		}
	}
	return set.Values()
}
