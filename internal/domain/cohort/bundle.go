package cohort

import "github.com/ehr/fhirquery/internal/platform/fhir"

// Synthesize wraps matches in a searchset Bundle without reordering or
// filtering them.
func Synthesize(matches []PatientRecord) fhir.Bundle {
	entries := make([]fhir.PatientEntry, len(matches))
	for i, m := range matches {
		entries[i] = m.ToFHIR()
	}
	return fhir.NewSearchBundle(entries)
}
