package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/OpticalFlyer/inkui/fonts"
	"github.com/OpticalFlyer/inkui/paint"
	"github.com/OpticalFlyer/inkui/ui"
)

var fixedTime = time.Date(2025, 3, 20, 10, 10, 0, 0, time.UTC)

func newTestDashboard(t *testing.T, opts ...Option) *Dashboard {
	t.Helper()
	source := NewCycle(func() time.Time { return fixedTime }, SampleReadings()...)
	return New(400, 300, fonts.Basic(), source, opts...)
}

func tapCentre(c ui.Component) (int, int) {
	b := c.Bounds()
	return b.X + b.Width/2, b.Y + b.Height/2
}

func TestNewShowsPlaceholders(t *testing.T) {
	d := newTestDashboard(t)
	if got := d.location.Text(); got != "Location: --" {
		t.Errorf("location = %q", got)
	}
	if got := d.footer.Text(); got != "Last updated: never" {
		t.Errorf("footer = %q", got)
	}
	if got := d.unitsButton.Label(); got != "Units: C" {
		t.Errorf("units button = %q", got)
	}
}

func TestSetWeather(t *testing.T) {
	d := newTestDashboard(t)
	w := SampleReadings()[0]
	w.Updated = time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)
	d.SetWeather(w)

	tests := []struct {
		name  string
		label *ui.Label
		want  string
	}{
		{"location", d.location, "Location: San Francisco"},
		{"temperature", d.temperature, "18°C"},
		{"condition", d.condition, "Partly Cloudy"},
		{"humidity", d.humidity, "Humidity: 72%"},
		{"wind", d.wind, "Wind: 12.5 km/h"},
		{"footer", d.footer, "Last updated: 2025-03-20 10:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.label.Text(); got != tt.want {
				t.Errorf("%s = %q; want %q", tt.name, got, tt.want)
			}
		})
	}
	if d.Weather() != w {
		t.Error("Weather() does not return the shown observation")
	}
}

func TestUnitsButton(t *testing.T) {
	d := newTestDashboard(t)
	d.SetWeather(SampleReadings()[0])

	if !d.HandleTap(tapCentre(d.unitsButton)) {
		t.Fatal("units button tap not claimed")
	}
	if d.Units() != Imperial {
		t.Fatalf("units = %v; want Imperial", d.Units())
	}
	if got := d.temperature.Text(); got != "64°F" {
		t.Errorf("temperature = %q; want 64°F", got)
	}
	if got := d.wind.Text(); got != "Wind: 7.8 mph" {
		t.Errorf("wind = %q", got)
	}
	if got := d.unitsButton.Label(); got != "Units: F" {
		t.Errorf("units button = %q", got)
	}

	d.HandleTap(tapCentre(d.unitsButton))
	if got := d.temperature.Text(); got != "18°C" {
		t.Errorf("temperature after second toggle = %q", got)
	}
}

func TestRefreshButton(t *testing.T) {
	d := newTestDashboard(t)

	d.HandleTap(tapCentre(d.refresh))
	if got := d.condition.Text(); got != "Partly Cloudy" {
		t.Errorf("condition after first refresh = %q", got)
	}
	if got := d.footer.Text(); got != "Last updated: 2025-03-20 10:10" {
		t.Errorf("footer = %q", got)
	}

	d.HandleTap(tapCentre(d.refresh))
	if got := d.temperature.Text(); got != "20°C" {
		t.Errorf("temperature after second refresh = %q", got)
	}
	if got := d.condition.Text(); got != "Sunny" {
		t.Errorf("condition after second refresh = %q", got)
	}
}

func TestRefreshFailure(t *testing.T) {
	d := New(400, 300, fonts.Basic(), NewCycle(nil))
	if err := d.Refresh(); !errors.Is(err, ErrNoReadings) {
		t.Errorf("Refresh = %v; want ErrNoReadings", err)
	}

	d.HandleTap(tapCentre(d.refresh))
	if got := d.footer.Text(); got != "Refresh failed" {
		t.Errorf("footer = %q; want Refresh failed", got)
	}
}

func TestLayoutFitsScreen(t *testing.T) {
	d := newTestDashboard(t)
	root := d.Root().Bounds()

	var walk func(c ui.Component)
	walk = func(c ui.Component) {
		b := c.Bounds()
		if b.X < root.X || b.Y < root.Y ||
			b.X+b.Width > root.X+root.Width || b.Y+b.Height > root.Y+root.Height {
			t.Errorf("component %T at %+v escapes the screen", c, b)
		}
		if l, ok := c.(*ui.Layout); ok {
			for _, child := range l.Children() {
				walk(child)
			}
		}
	}
	walk(d.Root())

	if d.footer.Bounds().Y <= d.refresh.Bounds().Y {
		t.Error("footer is not below the buttons")
	}
}

func TestWithMap(t *testing.T) {
	m := ui.NewMapView(0, 0, 50, 50, 37.7749, -122.4194, 10)
	d := newTestDashboard(t, WithMap(m), WithUnits(Imperial))

	if m.Bounds().Height <= 0 || m.Bounds().Width <= 0 {
		t.Fatalf("map got no space: %+v", m.Bounds())
	}
	if v := m.Viewport(); v.Width != m.Bounds().Width || v.Height != m.Bounds().Height {
		t.Errorf("viewport %dx%d does not match bounds %+v", v.Width, v.Height, m.Bounds())
	}
	if d.Units() != Imperial {
		t.Error("WithUnits ignored")
	}

	if err := d.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	c := paint.New(400, 300)
	if err := d.Render(c); err != nil {
		t.Fatalf("Render: %v", err)
	}
	// The marker sits at the centre of the map.
	x, y := tapCentre(m)
	if c.Pixel(x, y) != paint.Colored {
		t.Error("location marker not drawn")
	}
}

func TestRender(t *testing.T) {
	d := newTestDashboard(t)
	d.Refresh()

	c := paint.New(400, 300)
	if err := d.Render(c); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if c.Pixel(2, 2) != paint.Colored || c.Pixel(397, 297) != paint.Colored {
		t.Error("frame border not drawn")
	}
	if c.Pixel(0, 0) != paint.Uncolored {
		t.Error("pixel outside the frame drawn")
	}

	inked := 0
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			if c.Pixel(x, y) == paint.Colored {
				inked++
			}
		}
	}
	if inked < 1000 {
		t.Errorf("only %d pixels inked; text and widgets missing", inked)
	}
}
