package nlq

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
	"unicode"
)

// AgeOperator is the comparison an AgeFilter applies.
type AgeOperator string

const (
	AgeGreaterThan AgeOperator = ">"
	AgeLessThan    AgeOperator = "<"
	AgeBetween     AgeOperator = "between"
)

// AgeFilter is either empty (no constraint) or an operator with its bound(s).
// Between filters carry two bounds in the order they appeared in the query;
// the other operators carry one.
type AgeFilter struct {
	Operator AgeOperator
	Bounds   []int
}

func GreaterThan(age int) AgeFilter {
	return AgeFilter{Operator: AgeGreaterThan, Bounds: []int{age}}
}

func LessThan(age int) AgeFilter {
	return AgeFilter{Operator: AgeLessThan, Bounds: []int{age}}
}

// Between keeps first and second as given; they are not sorted.
func Between(first, second int) AgeFilter {
	return AgeFilter{Operator: AgeBetween, Bounds: []int{first, second}}
}

// IsEmpty reports whether the filter imposes no constraint.
func (f AgeFilter) IsEmpty() bool {
	return f.Operator == ""
}

// Value returns the single bound, or a two-element slice for between.
func (f AgeFilter) Value() any {
	switch {
	case f.IsEmpty():
		return nil
	case f.Operator == AgeBetween:
		return []int{f.Bounds[0], f.Bounds[1]}
	default:
		return f.Bounds[0]
	}
}

// MarshalJSON encodes an empty filter as {} and otherwise as
// {"operator": ..., "value": ...}.
func (f AgeFilter) MarshalJSON() ([]byte, error) {
	if f.IsEmpty() {
		return []byte("{}"), nil
	}
	return json.Marshal(struct {
		Operator AgeOperator `json:"operator"`
		Value    any         `json:"value"`
	}{f.Operator, f.Value()})
}

var digitRun = regexp.MustCompile(`\p{Nd}+`)

// ExtractAgeFilter derives an age constraint from the original (not
// lower-cased) query. Keywords are matched as case-sensitive substrings and
// checked in a fixed order: "over"/"older than", then "under"/"younger than",
// then "between". The first two use the first number in the text; between
// requires exactly two numbers.
func ExtractAgeFilter(text string) AgeFilter {
	first := digitRun.FindString(text)
	if first == "" {
		return AgeFilter{}
	}

	switch {
	case strings.Contains(text, "over") || strings.Contains(text, "older than"):
		return GreaterThan(atoi(first))
	case strings.Contains(text, "under") || strings.Contains(text, "younger than"):
		return LessThan(atoi(first))
	case strings.Contains(text, "between"):
		runs := digitRun.FindAllString(text, -1)
		if len(runs) != 2 {
			return AgeFilter{}
		}
		return Between(atoi(runs[0]), atoi(runs[1]))
	}
	return AgeFilter{}
}

// atoi converts a run of decimal digits from any script. Values past
// math.MaxInt saturate, which keeps every age comparison unchanged.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		d := digitValue(r)
		if n > (math.MaxInt-d)/10 {
			return math.MaxInt
		}
		n = n*10 + d
	}
	return n
}

// digitValue relies on Unicode encoding every Nd digit set as ten
// contiguous code points from zero to nine.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	off := 0
	for unicode.IsDigit(r - rune(off) - 1) {
		off++
	}
	return off % 10
}
