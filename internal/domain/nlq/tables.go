package nlq

import "sort"

// Vocabulary is the closed set of canonical condition names the interpreter
// may extract.
type Vocabulary struct {
	terms *OrderedSet[string]
}

// NewVocabulary builds a vocabulary from terms, dropping duplicates and
// empty strings.
func NewVocabulary(terms ...string) Vocabulary {
	set := NewOrderedSet[string]()
	for _, t := range terms {
		if t != "" {
			set.Add(t)
		}
	}
	return Vocabulary{terms: set}
}

func (v Vocabulary) Contains(term string) bool {
	return v.terms != nil && v.terms.Contains(term)
}

func (v Vocabulary) Len() int {
	if v.terms == nil {
		return 0
	}
	return v.terms.Len()
}

// Terms returns the vocabulary sorted alphabetically.
func (v Vocabulary) Terms() []string {
	if v.terms == nil {
		return []string{}
	}
	out := v.terms.Values()
	sort.Strings(out)
	return out
}

// SynonymTable maps surface or lemma forms to canonical condition names.
type SynonymTable struct {
	m map[string]string
}

// NewSynonymTable copies m into a read-only table.
func NewSynonymTable(m map[string]string) SynonymTable {
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return SynonymTable{m: cp}
}

// DefaultSynonyms maps adjectival forms to the condition nouns used in
// patient records.
func DefaultSynonyms() SynonymTable {
	return NewSynonymTable(map[string]string{
		"diabetic":     "diabetes",
		"asthmatic":    "asthma",
		"hypertensive": "hypertension",
	})
}

// Normalize returns the canonical form of lemma, or lemma itself when the
// table has no entry for it.
func (t SynonymTable) Normalize(lemma string) string {
	if canonical, ok := t.m[lemma]; ok {
		return canonical
	}
	return lemma
}

// Len returns the number of entries.
func (t SynonymTable) Len() int {
	return len(t.m)
}

// IgnoreSet holds words that are never condition candidates.
type IgnoreSet struct {
	m map[string]struct{}
}

// NewIgnoreSet builds a read-only set from words.
func NewIgnoreSet(words ...string) IgnoreSet {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return IgnoreSet{m: m}
}

// DefaultIgnoreSet returns the query verbs and filler words skipped during
// condition extraction.
func DefaultIgnoreSet() IgnoreSet {
	return NewIgnoreSet("show", "list", "find", "give", "get", "all", "patients", "patient", "with", "me")
}

func (s IgnoreSet) Contains(word string) bool {
	_, ok := s.m[word]
	return ok
}

// Tables bundles the read-only lookup tables the interpreter consults.
type Tables struct {
	Vocabulary Vocabulary
	Synonyms   SynonymTable
	Ignore     IgnoreSet
}

// DefaultTables returns the default synonym and ignore tables around vocab.
func DefaultTables(vocab Vocabulary) Tables {
	return Tables{
		Vocabulary: vocab,
		Synonyms:   DefaultSynonyms(),
		Ignore:     DefaultIgnoreSet(),
	}
}
