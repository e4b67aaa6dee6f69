package nlp

// PartOfSpeech is a Universal Dependencies coarse part-of-speech tag.
type PartOfSpeech string

const (
	ADJ   PartOfSpeech = "ADJ"
	ADP   PartOfSpeech = "ADP"
	ADV   PartOfSpeech = "ADV"
	AUX   PartOfSpeech = "AUX"
	CCONJ PartOfSpeech = "CCONJ"
	DET   PartOfSpeech = "DET"
	INTJ  PartOfSpeech = "INTJ"
	NOUN  PartOfSpeech = "NOUN"
	NUM   PartOfSpeech = "NUM"
	PART  PartOfSpeech = "PART"
	PRON  PartOfSpeech = "PRON"
	PROPN PartOfSpeech = "PROPN"
	PUNCT PartOfSpeech = "PUNCT"
	SCONJ PartOfSpeech = "SCONJ"
	VERB  PartOfSpeech = "VERB"
	X     PartOfSpeech = "X"
)

// IsNominal reports whether the tag can head a noun phrase.
func (p PartOfSpeech) IsNominal() bool {
	return p == NOUN || p == PROPN
}

// Token is a single analyzed token. Start and End are byte offsets into the
// NFKC-normalized input.
type Token struct {
	Text  string       `json:"text"`
	Lemma string       `json:"lemma"`
	POS   PartOfSpeech `json:"pos"`
	Index int          `json:"index"`
	Start int          `json:"start"`
	End   int          `json:"end"`
}

// Chunk is a contiguous group of tokens forming a noun phrase.
type Chunk []Token

// Text joins the surface forms of the chunk with single spaces.
func (c Chunk) Text() string {
	n := 0
	for _, t := range c {
		n += len(t.Text) + 1
	}
	buf := make([]byte, 0, n)
	for i, t := range c {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, t.Text...)
	}
	return string(buf)
}
