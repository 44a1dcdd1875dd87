package sanitize_test

import (
	"testing"

	"go-portfolio-backend/pkg/sanitize"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty input", "", ""},
		{"plain text untouched", "hello world", "hello world"},
		{"trims whitespace", "  hello  ", "hello"},
		{"strips angle brackets", "<script>alert(1)</script>", "scriptalert(1)/script"},
		{"brackets wrapping padded text", "< hello >", "hello"},
		{"unicode preserved", "héllo wörld", "héllo wörld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize.Text(tt.input))
		})
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"  plain  ",
		"<b>bold</b>",
		"< spaced >",
		"a < b > c",
		"no brackets at all",
	}
	for _, in := range inputs {
		once := sanitize.Text(in)
		assert.Equal(t, once, sanitize.Text(once), "input %q", in)
	}
}

func TestTextNeverContainsBrackets(t *testing.T) {
	inputs := []string{"<", ">", "<<>>", "a<b", "x > y", "<<<deep>>>"}
	for _, in := range inputs {
		out := sanitize.Text(in)
		assert.NotContains(t, out, "<")
		assert.NotContains(t, out, ">")
	}
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", sanitize.Email("  User@Example.COM  "))
	assert.Equal(t, "", sanitize.Email(""))
	// Brackets are not stripped from emails; the format check already ran
	assert.Equal(t, "a<b@c.d", sanitize.Email("A<B@c.D"))
}
