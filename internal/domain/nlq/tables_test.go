package nlq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynonymTable_Normalize(t *testing.T) {
	syn := DefaultSynonyms()

	assert.Equal(t, "diabetes", syn.Normalize("diabetic"))
	assert.Equal(t, "asthma", syn.Normalize("asthmatic"))
	assert.Equal(t, "hypertension", syn.Normalize("hypertensive"))
	assert.Equal(t, "covid", syn.Normalize("covid"))
	assert.Equal(t, "", syn.Normalize(""))
}

func TestSynonymTable_CopiesInput(t *testing.T) {
	src := map[string]string{"a": "b"}
	syn := NewSynonymTable(src)
	src["a"] = "c"

	assert.Equal(t, "b", syn.Normalize("a"))
	assert.Equal(t, 1, syn.Len())
}

func TestVocabulary(t *testing.T) {
	v := NewVocabulary("diabetes", "covid", "", "diabetes", "cancer")

	assert.Equal(t, 3, v.Len())
	assert.True(t, v.Contains("covid"))
	assert.False(t, v.Contains("asthma"))
	assert.False(t, v.Contains(""))
	assert.Equal(t, []string{"cancer", "covid", "diabetes"}, v.Terms())
}

func TestVocabulary_ZeroValue(t *testing.T) {
	var v Vocabulary

	assert.False(t, v.Contains("covid"))
	assert.Zero(t, v.Len())
	assert.Equal(t, []string{}, v.Terms())
}

func TestIgnoreSet(t *testing.T) {
	ig := DefaultIgnoreSet()

	for _, w := range []string{"show", "list", "find", "give", "get", "all", "patients", "patient", "with", "me"} {
		assert.True(t, ig.Contains(w), w)
	}
	assert.False(t, ig.Contains("Show"))
	assert.False(t, ig.Contains("covid"))
}

func TestOrderedSet(t *testing.T) {
	s := NewOrderedSet[string]()

	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("b"))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("a"))

	vals := s.Values()
	assert.Equal(t, []string{"b", "a"}, vals)

	vals[0] = "z"
	assert.Equal(t, []string{"b", "a"}, s.Values(), "Values must return a copy")
}
