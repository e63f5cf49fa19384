package infrastructure

import "weatherblock.app/pkg/sanitize"

// TextSanitizerAdapter implements the TextSanitizer port
type TextSanitizerAdapter struct{}

func NewTextSanitizerAdapter() *TextSanitizerAdapter {
	return &TextSanitizerAdapter{}
}

// Sanitize reduces s to plain single-line text
func (TextSanitizerAdapter) Sanitize(s string) string {
	return sanitize.Text(s)
}
