package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/inkui/config"
	"github.com/OpticalFlyer/inkui/dashboard"
	"github.com/OpticalFlyer/inkui/display"
	"github.com/OpticalFlyer/inkui/fonts"
	"github.com/OpticalFlyer/inkui/paint"
	"github.com/OpticalFlyer/inkui/shape"
	"github.com/OpticalFlyer/inkui/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML display profile")
	backend := flag.String("backend", "window", "display backend: window or terminal")
	pngPath := flag.String("png", "", "render one frame to this PNG file and exit")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	canvas := paint.New(cfg.Display.Width, cfg.Display.Height)
	canvas.SetRotation(cfg.Rotation())
	width, height := canvas.DrawableSize()

	var (
		opts    []dashboard.Option
		mapView *ui.MapView
	)
	if cfg.Map.Shapefile != "" {
		outline, err := shape.Load(cfg.Map.Shapefile)
		if err != nil {
			log.Fatal(err)
		}
		if outline.Skipped > 0 {
			log.Printf("%s: skipped %d records with no drawable geometry", cfg.Map.Shapefile, outline.Skipped)
		}
		mapView = ui.NewMapView(0, 0, 0, 0, cfg.Map.Lat, cfg.Map.Lon, cfg.Map.Zoom)
		mapView.SetOutline(outline)
		opts = append(opts, dashboard.WithMap(mapView))
	}

	source := dashboard.NewCycle(nil, dashboard.SampleReadings()...)
	dash := dashboard.New(width, height, fonts.Basic(), source, opts...)
	if err := dash.Refresh(); err != nil {
		log.Printf("Initial refresh failed: %v", err)
	}

	controller := ui.NewController()
	controller.AddRoot(dash)

	var err error
	switch {
	case *pngPath != "":
		err = writePNG(*pngPath, controller, canvas)
	case *backend == "window":
		err = runWindow(controller, canvas, mapView, cfg)
	case *backend == "terminal":
		err = runTerminal(controller, canvas, cfg)
	default:
		err = fmt.Errorf("unknown backend %q", *backend)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// writePNG renders one frame and saves the physical buffer.
func writePNG(path string, controller *ui.Controller, canvas *paint.Canvas) error {
	if err := controller.Render(canvas); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, canvas); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Printf("Wrote %dx%d frame (%v) to %s", canvas.Width(), canvas.Height(), canvas.Rotation(), path)
	return nil
}

func runTerminal(controller *ui.Controller, canvas *paint.Canvas, cfg config.Config) error {
	// Audio comes up before the screen takes over the terminal so failures
	// can still be logged.
	var click *clicker
	if cfg.Terminal.Click {
		var err error
		if click, err = newClicker(); err != nil {
			// Non-fatal, the preview works without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer click.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	term := display.NewTerminal(screen, canvas, controller, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	if click != nil {
		term.SetOnTap(click.Play)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return term.Run(ctx)
}
