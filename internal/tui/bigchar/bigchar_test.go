package bigchar

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseFace(t *testing.T) {
	face, err := ParseFace(goregular.TTF)
	require.NoError(t, err)
	assert.NotNil(t, face)

	_, err = ParseFace([]byte("not a font"))
	assert.ErrorIs(t, err, ErrNoFont)
}

func TestRender_Shape(t *testing.T) {
	face, err := ParseFace(goregular.TTF)
	require.NoError(t, err)
	r := New(face)
	require.True(t, r.Available())

	out := r.Render("H", 12, 6)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		assert.Equal(t, 12, utf8.RuneCountInString(l))
	}
	assert.True(t, strings.ContainsAny(out, "█▀▄"), "glyph left no ink:\n%s", out)

	assert.Equal(t, out, r.Render("H", 12, 6))
}

func TestRender_NoFace(t *testing.T) {
	r := New(nil)
	assert.False(t, r.Available())
	assert.Empty(t, r.Render("子", 8, 4))

	var nilRenderer *Renderer
	assert.Empty(t, nilRenderer.Render("子", 8, 4))
}
