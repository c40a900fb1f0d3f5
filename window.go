package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/inkui/config"
	"github.com/OpticalFlyer/inkui/display"
	"github.com/OpticalFlyer/inkui/paint"
	"github.com/OpticalFlyer/inkui/proj"
	"github.com/OpticalFlyer/inkui/ui"
)

// Simulator implements ebiten.Game, showing the panel's physical frame
// scaled up in a window.
type Simulator struct {
	controller *ui.Controller
	canvas     *paint.Canvas
	scale      int

	// Optional map driven by the keyboard
	mapView *ui.MapView

	frame  *ebiten.Image
	pixels []byte

	// Pointer state for tap detection
	mouse    *display.TapTracker[ebiten.MouseButton]
	touches  *display.TapTracker[ebiten.TouchID]
	touchIDs []ebiten.TouchID
}

func NewSimulator(controller *ui.Controller, canvas *paint.Canvas, scale int) *Simulator {
	return &Simulator{
		controller: controller,
		canvas:     canvas,
		scale:      scale,
		frame:      ebiten.NewImage(canvas.Width(), canvas.Height()),
		mouse:      display.NewTapTracker[ebiten.MouseButton](display.DefaultSlop),
		touches:    display.NewTapTracker[ebiten.TouchID](display.DefaultSlop),
		touchIDs:   make([]ebiten.TouchID, 0, 8),
	}
}

func (s *Simulator) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	s.handleKeys()
	s.handleMouse()
	s.handleTouchEvents()

	if err := s.controller.Update(); err != nil {
		return err
	}
	if err := s.controller.Render(s.canvas); err != nil {
		return err
	}
	s.pixels = display.RGBAInto(s.pixels, s.canvas)
	return nil
}

func (s *Simulator) handleKeys() {
	if s.mapView == nil {
		return
	}
	v := s.mapView.Viewport()

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || // = key
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) { // numpad +
		v.ZoomIn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || // - key
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) { // numpad -
		v.ZoomOut()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		v.Pan(proj.PanLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		v.Pan(proj.PanRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		v.Pan(proj.PanUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		v.Pan(proj.PanDown)
	}
}

func (s *Simulator) handleMouse() {
	x, y := ebiten.CursorPosition()
	button := ebiten.MouseButtonLeft

	if inpututil.IsMouseButtonJustPressed(button) {
		s.mouse.Press(button, x, y)
	} else if ebiten.IsMouseButtonPressed(button) {
		s.mouse.Move(button, x, y)
	}
	if inpututil.IsMouseButtonJustReleased(button) {
		if at, ok := s.mouse.Release(button, x, y); ok {
			s.tap(at.X, at.Y)
		}
	}
}

// tap converts window pixels to a logical canvas point and offers it to the
// UI.
func (s *Simulator) tap(x, y int) {
	lx, ly := s.canvas.ToLogical(x/s.scale, y/s.scale)
	s.controller.HandleTap(lx, ly)
}

func (s *Simulator) Draw(screen *ebiten.Image) {
	if s.pixels == nil {
		return
	}
	s.frame.WritePixels(s.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(s.scale), float64(s.scale))
	screen.DrawImage(s.frame, op)
}

func (s *Simulator) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.canvas.Width() * s.scale, s.canvas.Height() * s.scale
}

func runWindow(controller *ui.Controller, canvas *paint.Canvas, mapView *ui.MapView, cfg config.Config) error {
	sim := NewSimulator(controller, canvas, cfg.Window.Scale)
	sim.mapView = mapView

	ebiten.SetWindowSize(canvas.Width()*cfg.Window.Scale, canvas.Height()*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(sim); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
