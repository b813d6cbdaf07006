package htmlsafe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Hello world", "Hello world"},
		{"script tag", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"quotes", `say "hi" & 'bye'`, "say &quot;hi&quot; &amp; &#39;bye&#39;"},
		{"existing entity is escaped again", "&lt;", "&amp;lt;"},
		{"attribute breakout", `" onmouseover="x`, "&quot; onmouseover=&quot;x"},
		{"unicode preserved", "Zoë <3", "Zoë &lt;3"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestEscapeNeverLeavesSignificantCharacters(t *testing.T) {
	out := Escape(`<a href="x" onclick='y'>&</a>`)
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
	assert.NotContains(t, out, `"`)
	assert.NotContains(t, out, "'")
}

func TestEscapeOptional(t *testing.T) {
	assert.Equal(t, "", EscapeOptional(""))
	assert.Equal(t, "A &amp; B", EscapeOptional("A & B"))
}
