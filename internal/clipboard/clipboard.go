// Package clipboard adapts the system clipboard to the session's copy
// action.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available, e.g.
// on a headless Linux host without xclip, xsel or wl-copy.
var ErrUnsupported = errors.New("clipboard: no clipboard utility available")

// System writes to the operating system clipboard.
type System struct{}

// Available reports whether the host has a usable clipboard.
func (System) Available() bool {
	return !clipboard.Unsupported
}

// WriteAll replaces the clipboard contents with text.
func (s System) WriteAll(text string) error {
	if !s.Available() {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard used when the system one is
// unavailable and in tests.
type Memory struct {
	Text string
	Err  error
}

// WriteAll stores text unless Err is set.
func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}
