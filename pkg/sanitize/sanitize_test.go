package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"PlainText", "light rain", "light rain"},
		{"Empty", "", ""},
		{"StripsTags", "<b>London</b>", "London"},
		{"DropsScript", "<script>alert(1)</script>Paris", "Paris"},
		{"CollapsesWhitespace", "  broken \n\t clouds  ", "broken clouds"},
		{"DropsControlChars", "few\x07clouds\x1b", "few clouds"},
		{"KeepsApostrophe", "Land's End", "Land's End"},
		{"KeepsAmpersand", "Rain & Snow", "Rain & Snow"},
		{"KeepsUnicode", "São Paulo", "São Paulo"},
		{"DropsEncodedMarkup", "&lt;img&gt;x", "imgx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Text(tt.input))
		})
	}
}
