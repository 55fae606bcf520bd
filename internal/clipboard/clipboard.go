// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool can be found.
var ErrUnavailable = errors.New("no clipboard command available")

// command is the program and arguments that read the clipboard text on stdin.
type command struct {
	name string
	args []string
}

// commandFor picks the clipboard command for goos. lookPath reports whether a
// program is installed.
func commandFor(goos string, lookPath func(string) error) (command, error) {
	switch goos {
	case "darwin":
		return command{name: "pbcopy"}, nil
	case "windows":
		return command{name: "cmd", args: []string{"/c", "clip"}}, nil
	}

	// Linux and the BSDs: prefer Wayland, then xclip, then xsel.
	candidates := []command{
		{name: "wl-copy"},
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
	}
	for _, c := range candidates {
		if lookPath(c.name) == nil {
			return c, nil
		}
	}
	return command{}, ErrUnavailable
}

func lookPath(name string) error {
	_, err := exec.LookPath(name)
	return err
}

// Write copies text to the system clipboard.
func Write(text string) error {
	c, err := commandFor(runtime.GOOS, lookPath)
	if err != nil {
		return err
	}

	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	_, err := commandFor(runtime.GOOS, lookPath)
	return err == nil
}
