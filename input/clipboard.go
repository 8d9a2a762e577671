package input

import "github.com/atotto/clipboard"

// Clipboard provides clipboard integration for copy, cut and paste.
//
// Errors must not crash the UI; the field ignores them.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// System is the operating system clipboard.
type System struct{}

func (System) ReadText() (string, error) { return clipboard.ReadAll() }

func (System) WriteText(s string) error { return clipboard.WriteAll(s) }

// Memory is an in-process clipboard.
type Memory struct {
	Text string
}

func (m *Memory) ReadText() (string, error) { return m.Text, nil }

func (m *Memory) WriteText(s string) error {
	m.Text = s
	return nil
}
