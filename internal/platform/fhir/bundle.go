package fhir

import "github.com/ehr/fhirquery/pkg/fhirmodels"

// Bundle is a searchset result envelope. Entries are Patient projections
// inlined directly into entry.
type Bundle struct {
	ResourceType string         `json:"resourceType"`
	Type         string         `json:"type"`
	Total        int            `json:"total"`
	Entry        []PatientEntry `json:"entry"`
}

// PatientEntry is the read-only Patient view placed in a Bundle.
type PatientEntry struct {
	ResourceType string      `json:"resourceType"`
	ID           string      `json:"id"`
	Name         []HumanName `json:"name"`
	Age          int         `json:"age"`
	Condition    []string    `json:"condition"`
}

// NewSearchBundle wraps entries in a searchset Bundle. Total always equals
// len(entries) and entry encodes as [] when there are none.
func NewSearchBundle(entries []PatientEntry) Bundle {
	if entries == nil {
		entries = []PatientEntry{}
	}
	return Bundle{
		ResourceType: fhirmodels.ResourceTypeBundle,
		Type:         fhirmodels.BundleTypeSearchset,
		Total:        len(entries),
		Entry:        entries,
	}
}
