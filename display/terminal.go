package display

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/inkui/paint"
)

// UpdateInterval is how often Run ticks the application.
const UpdateInterval = 250 * time.Millisecond

// App is the tree driven by a display, usually a *ui.Controller.
type App interface {
	Render(c *paint.Canvas) error
	HandleTap(x, y int) bool
	Update() error
}

// Terminal previews a canvas in a tcell screen. Each cell shows two vertical
// blocks using half-block characters; a block covers cellWidth x cellHeight
// panel pixels and is inked if any pixel in it is.
type Terminal struct {
	screen tcell.Screen
	canvas *paint.Canvas
	app    App
	style  tcell.Style

	cellWidth  int
	cellHeight int

	button1 bool
	onTap   func()
}

// NewTerminal wires app to an initialized screen. Cell sizes below one are
// treated as one.
func NewTerminal(screen tcell.Screen, canvas *paint.Canvas, app App, cellWidth, cellHeight int) *Terminal {
	screen.EnableMouse()
	return &Terminal{
		screen:     screen,
		canvas:     canvas,
		app:        app,
		style:      tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		cellWidth:  max(cellWidth, 1),
		cellHeight: max(cellHeight, 1),
	}
}

// SetOnTap installs a hook that runs after the application claims a tap.
func (t *Terminal) SetOnTap(fn func()) { t.onTap = fn }

// Size returns the number of terminal cells needed for the whole panel.
func (t *Terminal) Size() (cols, rows int) {
	cols = (t.canvas.Width() + t.cellWidth - 1) / t.cellWidth
	blocks := (t.canvas.Height() + t.cellHeight - 1) / t.cellHeight
	return cols, (blocks + 1) / 2
}

// Draw renders the application and shows the physical frame.
func (t *Terminal) Draw() error {
	if err := t.app.Render(t.canvas); err != nil {
		return err
	}

	t.screen.Clear()
	cols, rows := t.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := t.inked(cx, 2*cy)
			bottom := t.inked(cx, 2*cy+1)
			t.screen.SetContent(cx, cy, halfBlock(top, bottom), nil, t.style)
		}
	}
	t.screen.Show()
	return nil
}

// inked reports whether any pixel of block (bx, by) is foreground.
func (t *Terminal) inked(bx, by int) bool {
	x0, y0 := bx*t.cellWidth, by*t.cellHeight
	for y := y0; y < y0+t.cellHeight; y++ {
		for x := x0; x < x0+t.cellWidth; x++ {
			if t.canvas.PhysicalPixel(x, y) == paint.Colored {
				return true
			}
		}
	}
	return false
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}

// HandleEvent processes one screen event. It returns false when the user
// asked to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false, nil
		}

	case *tcell.EventResize:
		t.screen.Sync()
		return true, t.Draw()

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		pressed := down && !t.button1
		t.button1 = down
		if !pressed {
			return true, nil
		}

		cx, cy := ev.Position()
		x, y := t.cellCentre(cx, cy)
		if t.app.HandleTap(t.canvas.ToLogical(x, y)) {
			if t.onTap != nil {
				t.onTap()
			}
			return true, t.Draw()
		}
	}
	return true, nil
}

// cellCentre returns the physical pixel under the middle of a cell.
func (t *Terminal) cellCentre(cx, cy int) (int, int) {
	return cx*t.cellWidth + t.cellWidth/2, 2*cy*t.cellHeight + t.cellHeight
}

// Run draws the first frame and processes events until the user quits, ctx
// ends or the application fails. The application is ticked every
// UpdateInterval.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.Draw(); err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(UpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			more, err := t.HandleEvent(ev)
			if err != nil {
				return err
			}
			if !more {
				return nil
			}

		case <-ticker.C:
			if err := t.app.Update(); err != nil {
				return err
			}
			if err := t.Draw(); err != nil {
				return err
			}
		}
	}
}
