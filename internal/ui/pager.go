package ui

import (
	"bytes"
	"encoding/json"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// PagerFunc builds the command that shows content outside the TUI
type PagerFunc func(content []byte) tea.ExecCommand

// ovCommand runs the ov pager on an in-memory document. ov drives the tty
// itself, so the streams offered by Bubble Tea are ignored.
type ovCommand struct {
	content []byte
}

// NewOvPager returns a PagerFunc backed by ov
func NewOvPager() PagerFunc {
	return func(content []byte) tea.ExecCommand {
		return &ovCommand{content: content}
	}
}

func (c *ovCommand) Run() error {
	root, err := oviewer.NewRoot(bytes.NewReader(c.content))
	if err != nil {
		return err
	}

	// Don't write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

func (c *ovCommand) SetStdin(io.Reader)  {}
func (c *ovCommand) SetStdout(io.Writer) {}
func (c *ovCommand) SetStderr(io.Writer) {}

// formatRaw indents a JSON body for reading. Bodies that are not valid JSON
// are returned unchanged.
func formatRaw(raw []byte) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return raw
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}
