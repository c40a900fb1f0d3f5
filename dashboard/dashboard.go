// Package dashboard builds a weather screen from ui components.
package dashboard

import (
	"fmt"

	"github.com/OpticalFlyer/inkui/paint"
	"github.com/OpticalFlyer/inkui/ui"
)

const (
	padding     = 10
	spacing     = 6
	rowSpacing  = 4
	buttonInset = 6
	// frameInset is where the outer border is drawn.
	frameInset = 2
)

var _ ui.Component = (*Dashboard)(nil)

// Dashboard is a weather screen: header, location, temperature and
// condition, details, an optional map, Refresh and Units buttons and a
// footer. It keeps typed handles to every label it updates.
type Dashboard struct {
	root   *ui.Layout
	font   paint.Font
	source Source

	location    *ui.Label
	temperature *ui.Label
	condition   *ui.Label
	humidity    *ui.Label
	wind        *ui.Label
	footer      *ui.Label
	refresh     *ui.Button
	unitsButton *ui.Button
	mapView     *ui.MapView

	weather Weather
	units   Units
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithMap places m between the details and the buttons, where it takes any
// spare height. The map marker follows the reported location.
func WithMap(m *ui.MapView) Option {
	return func(d *Dashboard) {
		d.mapView = m
	}
}

// WithUnits sets the initial unit system.
func WithUnits(u Units) Option {
	return func(d *Dashboard) {
		d.units = u
	}
}

// New builds a dashboard filling width x height. Refresh pulls from source.
func New(width, height int, font paint.Font, source Source, opts ...Option) *Dashboard {
	d := &Dashboard{font: font, source: source}
	for _, opt := range opts {
		opt(d)
	}

	line := font.Height() + 4
	charWidth := font.Width()

	d.root = ui.NewLayout(0, 0, width, height, ui.Vertical)
	d.root.SetPadding(padding)
	d.root.SetSpacing(spacing)

	header := ui.Add(d.root, ui.NewLabel(0, 0, 0, line, "Weather Dashboard", font))
	header.SetAlignment(ui.AlignCenter)

	d.location = ui.Add(d.root, ui.NewLabel(0, 0, 0, line, "", font))

	row := ui.Add(d.root, ui.NewLayout(0, 0, 0, line, ui.Horizontal))
	row.SetPadding(0)
	row.SetSpacing(2 * spacing)
	d.temperature = ui.Add(row, ui.NewLabel(0, 0, 6*charWidth, 0, "", font))
	d.condition = ui.Add(row, ui.NewLabel(0, 0, 0, 0, "", font))

	ui.Add(d.root, ui.NewDivider(0, 0, 0, 2))

	details := ui.Add(d.root, ui.NewLayout(0, 0, 0, 2*line+rowSpacing, ui.Vertical))
	details.SetPadding(0)
	details.SetSpacing(rowSpacing)
	d.humidity = ui.Add(details, ui.NewLabel(0, 0, 0, line, "", font))
	d.wind = ui.Add(details, ui.NewLabel(0, 0, 0, line, "", font))

	if d.mapView != nil {
		d.mapView.SetPosition(0, 0)
		d.mapView.SetSize(0, 0)
		ui.Add(d.root, d.mapView)
	}

	buttons := ui.Add(d.root, ui.NewLayout(0, 0, 0, line+buttonInset, ui.Horizontal))
	buttons.SetPadding(0)
	buttons.SetSpacing(2 * spacing)
	d.refresh = ui.Add(buttons, ui.NewButton(0, 0, 0, 0, "Refresh", font))
	d.refresh.SetOnClick(d.Refresh)
	d.refresh.SetOnError(d.showError)
	d.unitsButton = ui.Add(buttons, ui.NewButton(0, 0, 0, 0, "", font))
	d.unitsButton.SetOnClick(func() error {
		d.SetUnits(d.units.Toggle())
		return nil
	})

	d.footer = ui.Add(d.root, ui.NewLabel(0, 0, 0, line, "", font))
	d.footer.SetAlignment(ui.AlignCenter)

	d.SetUnits(d.units)
	d.SetWeather(Weather{})
	return d
}

// Root returns the top-level layout.
func (d *Dashboard) Root() *ui.Layout { return d.root }

// Weather returns the observation on screen.
func (d *Dashboard) Weather() Weather { return d.weather }

// SetWeather shows w. A zero Weather shows placeholders.
func (d *Dashboard) SetWeather(w Weather) {
	d.weather = w
	if w.Location == "" {
		d.location.SetText("Location: --")
		d.temperature.SetText("--")
		d.condition.SetText("")
		d.humidity.SetText("Humidity: --")
		d.wind.SetText("Wind: --")
		d.footer.SetText("Last updated: never")
		return
	}

	d.location.SetText("Location: " + w.Location)
	d.condition.SetText(w.Condition)
	d.humidity.SetText(fmt.Sprintf("Humidity: %d%%", w.Humidity))
	d.showReadings()
	if w.Updated.IsZero() {
		d.footer.SetText("Last updated: never")
	} else {
		d.footer.SetText("Last updated: " + w.Updated.Format("2006-01-02 15:04"))
	}
	if d.mapView != nil {
		d.mapView.SetMarker(w.Lat, w.Lon)
	}
}

// Units returns the unit system in use.
func (d *Dashboard) Units() Units { return d.units }

// SetUnits switches the unit system and relabels the readings.
func (d *Dashboard) SetUnits(u Units) {
	d.units = u
	d.unitsButton.SetLabel("Units: " + u.String())
	if d.weather.Location != "" {
		d.showReadings()
	}
}

func (d *Dashboard) showReadings() {
	d.temperature.SetText(FormatTemperature(d.weather.Temperature, d.units))
	d.wind.SetText(FormatWind(d.weather.WindSpeed, d.units))
}

// Refresh fetches the current observation and shows it.
func (d *Dashboard) Refresh() error {
	if d.source == nil {
		return ErrNoReadings
	}
	w, err := d.source.Current()
	if err != nil {
		return fmt.Errorf("refreshing weather: %w", err)
	}
	d.SetWeather(w)
	return nil
}

func (d *Dashboard) showError(err error) {
	d.footer.SetText("Refresh failed")
}

func (d *Dashboard) Bounds() ui.Rect           { return d.root.Bounds() }
func (d *Dashboard) SetPosition(x, y int)      { d.root.SetPosition(x, y) }
func (d *Dashboard) SetSize(width, height int) { d.root.SetSize(width, height) }
func (d *Dashboard) HandleTap(x, y int) bool   { return d.root.HandleTap(x, y) }
func (d *Dashboard) Update() error             { return d.root.Update() }

// Render paints the tree and a border just inside the screen edge.
func (d *Dashboard) Render(c *paint.Canvas) error {
	if err := d.root.Render(c); err != nil {
		return err
	}
	b := d.root.Bounds()
	c.DrawRectangle(b.X+frameInset, b.Y+frameInset,
		b.X+b.Width-1-frameInset, b.Y+b.Height-1-frameInset, paint.Colored)
	return nil
}
