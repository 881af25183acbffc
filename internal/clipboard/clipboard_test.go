package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubLookPath(t *testing.T, installed ...string) {
	t.Helper()
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(name string) (string, error) {
		for _, n := range installed {
			if n == name {
				return "/usr/bin/" + n, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestResolve_Preference(t *testing.T) {
	stubLookPath(t, "xsel", "xclip")
	h, ok := resolve("linux")
	assert.True(t, ok)
	assert.Equal(t, "xclip", h.name)
	assert.Equal(t, []string{"-selection", "clipboard"}, h.args)
}

func TestResolve_UnknownOSFallsBackToLinux(t *testing.T) {
	stubLookPath(t, "xsel")
	h, ok := resolve("plan9")
	assert.True(t, ok)
	assert.Equal(t, "xsel", h.name)
}

func TestResolve_NothingInstalled(t *testing.T) {
	stubLookPath(t)
	_, ok := resolve("darwin")
	assert.False(t, ok)
	assert.False(t, Available())
	assert.ErrorIs(t, Write("x"), ErrUnavailable)
}
