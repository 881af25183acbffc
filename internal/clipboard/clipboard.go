// Package clipboard copies text to the system clipboard through the
// platform's command-line helper.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard helper is installed.
var ErrUnavailable = errors.New("clipboard: no helper found")

type helper struct {
	name string
	args []string
}

// helpers lists candidates per GOOS in preference order.
var helpers = map[string][]helper{
	"darwin":  {{"pbcopy", nil}},
	"linux":   {{"wl-copy", nil}, {"xclip", []string{"-selection", "clipboard"}}, {"xsel", []string{"--clipboard", "--input"}}},
	"windows": {{"clip", nil}},
}

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

func resolve(goos string) (helper, bool) {
	candidates, ok := helpers[goos]
	if !ok {
		candidates = helpers["linux"]
	}
	for _, h := range candidates {
		if _, err := lookPath(h.name); err == nil {
			return h, true
		}
	}
	return helper{}, false
}

// Write copies text to the system clipboard.
func Write(text string) error {
	h, ok := resolve(runtime.GOOS)
	if !ok {
		return ErrUnavailable
	}
	cmd := exec.Command(h.name, h.args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available reports whether Write can succeed on this machine.
func Available() bool {
	_, ok := resolve(runtime.GOOS)
	return ok
}
