package openai

import "strings"

// normalizeNotes collapses runs of whitespace in clinical notes so the
// prompt stays compact. Sentence punctuation is preserved because the
// extractor reports the sentence a finding appeared in.
func normalizeNotes(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
