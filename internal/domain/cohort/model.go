package cohort

import (
	"github.com/ehr/fhirquery/internal/platform/fhir"
	"github.com/ehr/fhirquery/pkg/fhirmodels"
)

// PatientRecord is one row of the patient dataset. Records are never
// mutated after the dataset is loaded.
type PatientRecord struct {
	ID         string   `db:"id" json:"id"`
	Name       string   `db:"name" json:"name"`
	Age        int      `db:"age" json:"age"`
	Conditions []string `db:"conditions" json:"conditions"`
}

// ToFHIR projects the record into a Bundle entry. The entry shares the
// record's Conditions slice.
func (p PatientRecord) ToFHIR() fhir.PatientEntry {
	return fhir.PatientEntry{
		ResourceType: fhirmodels.ResourceTypePatient,
		ID:           p.ID,
		Name:         []fhir.HumanName{{Text: p.Name}},
		Age:          p.Age,
		Condition:    p.Conditions,
	}
}

// HasAnyCondition reports whether the record lists at least one of wanted.
func (p PatientRecord) HasAnyCondition(wanted []string) bool {
	for _, w := range wanted {
		for _, c := range p.Conditions {
			if c == w {
				return true
			}
		}
	}
	return false
}

// SeedRecords returns the built-in demonstration dataset.
func SeedRecords() []PatientRecord {
	return []PatientRecord{
		{ID: "1", Name: "Alice Johnson", Age: 55, Conditions: []string{"diabetes"}},
		{ID: "2", Name: "Bob Smith", Age: 45, Conditions: []string{"covid"}},
		{ID: "3", Name: "Carlos Gomez", Age: 62, Conditions: []string{"cancer"}},
		{ID: "4", Name: "Diana Patel", Age: 28, Conditions: []string{"covid"}},
		{ID: "5", Name: "Ethan Lee", Age: 70, Conditions: []string{"copd", "hypertension"}},
		{ID: "6", Name: "Fiona Zhang", Age: 38, Conditions: []string{"hypertension"}},
		{ID: "7", Name: "Grace Kim", Age: 50, Conditions: []string{"covid", "diabetes"}},
	}
}
