package render

import (
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sketch/model"
	"github.com/sheikhrachel/go-gol-sketch/sketch"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ansiClear moves the cursor home and erases the screen
	ansiClear = "\033[H\033[2J"
)

// ErrQuit is returned by renderers when the user asks to stop
var ErrQuit = errors.New("quit requested")

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	out     io.Writer
	buffers *BufferPool
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out, buffers: NewBufferPool()}
}

// Display writes the status line followed by one text line per grid row
func (r *TerminalRenderer) Display(g *model.Grid, status sketch.Status) error {
	buf := r.buffers.Get()
	defer r.buffers.Put(buf)

	buf.WriteString(status.String())
	buf.WriteByte('\n')
	for row := range g.GetRows() {
		for column := range g.GetColumns() {
			if g.Get(column, row) {
				buf.WriteString(gridPosBlock)
			} else {
				buf.WriteString(gridPosEmpty)
			}
		}
		buf.WriteByte('\n')
	}

	if _, err := buf.WriteTo(r.out); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, ansiClear); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
