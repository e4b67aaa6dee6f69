package cohort

import "github.com/ehr/fhirquery/internal/domain/nlq"

// Filter returns the records matching q, in input order. A record matches
// when it shares at least one condition with q (or q names none) and its age
// satisfies q's age filter (or the filter is empty).
func Filter(q nlq.ParsedQuery, records []PatientRecord) []PatientRecord {
	matches := make([]PatientRecord, 0, len(records))
	for _, r := range records {
		if !matchesConditions(q.Conditions, r) {
			continue
		}
		if !matchesAge(q.AgeFilter, r.Age) {
			continue
		}
		matches = append(matches, r)
	}
	return matches
}

func matchesConditions(wanted []string, r PatientRecord) bool {
	return len(wanted) == 0 || r.HasAnyCondition(wanted)
}

// matchesAge treats a between filter as an inclusive range from its first
// bound to its second; reversed bounds match nothing.
func matchesAge(f nlq.AgeFilter, age int) bool {
	if f.IsEmpty() {
		return true
	}
	switch f.Operator {
	case nlq.AgeGreaterThan:
		return age > f.Bounds[0]
	case nlq.AgeLessThan:
		return age < f.Bounds[0]
	case nlq.AgeBetween:
		return f.Bounds[0] <= age && age <= f.Bounds[1]
	}
	return true
}
