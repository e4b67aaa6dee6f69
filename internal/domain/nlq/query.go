package nlq

import "github.com/ehr/fhirquery/pkg/fhirmodels"

// ParsedQuery is the structured form of a free-text cohort query.
type ParsedQuery struct {
	ResourceType string    `json:"resourceType"`
	Conditions   []string  `json:"conditions"`
	AgeFilter    AgeFilter `json:"ageFilter"`
}

// NewParsedQuery builds a Patient query. A nil conditions slice is stored as
// an empty one so it encodes as [].
func NewParsedQuery(conditions []string, age AgeFilter) ParsedQuery {
	if conditions == nil {
		conditions = []string{}
	}
	return ParsedQuery{
		ResourceType: fhirmodels.ResourceTypePatient,
		Conditions:   conditions,
		AgeFilter:    age,
	}
}
