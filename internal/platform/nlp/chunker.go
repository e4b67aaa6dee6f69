package nlp

// Chunks groups tagged tokens into noun phrases. A chunk is a maximal run of
// determiners, numerals, adjectives and nouns cut after its last noun; runs
// without a noun are dropped. A pronoun forms a chunk on its own.
func Chunks(tokens []Token) []Chunk {
	var chunks []Chunk
	start, head := -1, -1

	flush := func() {
		if start >= 0 && head >= start {
			chunks = append(chunks, Chunk(tokens[start:head+1]))
		}
		start, head = -1, -1
	}

	for i, t := range tokens {
		switch t.POS {
		case DET, NUM, ADJ, NOUN, PROPN:
			if start < 0 {
				start = i
			}
			if t.POS.IsNominal() {
				head = i
			}
		case PRON:
			flush()
			chunks = append(chunks, Chunk(tokens[i:i+1]))
		default:
			flush()
		}
	}
	flush()
	return chunks
}
