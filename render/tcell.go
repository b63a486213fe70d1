package render

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sketch/model"
	"github.com/sheikhrachel/go-gol-sketch/sketch"
)

const (
	aliveRune = '█'
	deadRune  = ' '
)

// TcellRenderer draws the grid on a full terminal screen, two columns per cell
type TcellRenderer struct {
	screen     tcell.Screen
	aliveStyle tcell.Style
	deadStyle  tcell.Style
	textStyle  tcell.Style

	finiOnce sync.Once
}

// NewTcellRenderer opens the terminal screen
func NewTcellRenderer() (*TcellRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewTcellRenderer] failed to create screen")
	}
	return NewTcellRendererWithScreen(screen)
}

// NewTcellRendererWithScreen initializes screen and renders to it
func NewTcellRendererWithScreen(screen tcell.Screen) (*TcellRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewTcellRendererWithScreen] failed to init screen")
	}
	screen.HideCursor()

	return &TcellRenderer{
		screen:     screen,
		aliveStyle: tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 0, 200)),
		deadStyle:  tcell.StyleDefault.Background(tcell.NewRGBColor(240, 240, 240)),
		textStyle:  tcell.StyleDefault,
	}, nil
}

// Clear clears the screen buffer
func (r *TcellRenderer) Clear() error {
	r.screen.Clear()
	return nil
}

// Display draws the status line and the grid below it
func (r *TcellRenderer) Display(g *model.Grid, status sketch.Status) error {
	x := 0
	for _, ch := range status.String() {
		r.screen.SetContent(x, 0, ch, nil, r.textStyle)
		x++
	}

	for cell := range g.Cells() {
		ch, style := deadRune, r.deadStyle
		if cell.IsAlive() {
			ch, style = aliveRune, r.aliveStyle
		}
		x, y := cell.GetColumn()*2, cell.GetRow()+1
		r.screen.SetContent(x, y, ch, nil, style)
		r.screen.SetContent(x+1, y, ch, nil, style)
	}

	r.screen.Show()
	return nil
}

// WatchQuit polls screen events and returns ErrQuit on q, Esc or Ctrl-C.
// It returns nil once ctx is done.
func (r *TcellRenderer) WatchQuit(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			r.fini()
		case <-stop:
		}
	}()

	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return ErrQuit
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// Close restores the terminal
func (r *TcellRenderer) Close() error {
	r.fini()
	return nil
}

func (r *TcellRenderer) fini() {
	r.finiOnce.Do(r.screen.Fini)
}
