package nlp

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"basic", "Show me all diabetic patients", []string{"Show", "me", "all", "diabetic", "patients"}},
		{"empty", "", nil},
		{"whitespace only", "   \t\n", nil},
		{"digits", "over 50", []string{"over", "50"}},
		{"punctuation", "covid, diabetes?", []string{"covid", ",", "diabetes", "?"}},
		{"clitic", "patient's age", []string{"patient", "'s", "age"}},
		{"leading apostrophe", "'quoted'", []string{"'", "quoted", "'"}},
		{"hyphen", "covid-19", []string{"covid", "-", "19"}},
		{"fullwidth digits", "over ５０", []string{"over", "50"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenTexts(tokenize(tt.input))
			if !stringSliceEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize_OffsetsAndIndex(t *testing.T) {
	tokens := tokenize("list covid")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Start != 0 || tokens[0].End != 4 {
		t.Errorf("token 0 offsets = (%d, %d), want (0, 4)", tokens[0].Start, tokens[0].End)
	}
	if tokens[1].Start != 5 || tokens[1].End != 10 {
		t.Errorf("token 1 offsets = (%d, %d), want (5, 10)", tokens[1].Start, tokens[1].End)
	}
	for i, tok := range tokens {
		if tok.Index != i {
			t.Errorf("token %q index = %d, want %d", tok.Text, tok.Index, i)
		}
	}
}

func tokenTexts(tokens []Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
