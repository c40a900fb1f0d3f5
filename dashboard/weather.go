package dashboard

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrNoReadings is returned by a Cycle with nothing to report.
var ErrNoReadings = errors.New("no weather readings")

// Weather is one observation shown on the dashboard.
type Weather struct {
	Location    string
	Temperature int // Celsius
	Condition   string
	Humidity    int     // percent
	WindSpeed   float64 // km/h
	Lat, Lon    float64
	Updated     time.Time
}

// Units selects how temperatures and speeds are printed.
type Units int

const (
	Metric Units = iota
	Imperial
)

func (u Units) String() string {
	if u == Imperial {
		return "F"
	}
	return "C"
}

// Toggle returns the other unit system.
func (u Units) Toggle() Units {
	if u == Imperial {
		return Metric
	}
	return Imperial
}

// FormatTemperature prints a Celsius reading in units, rounded to a whole
// degree.
func FormatTemperature(celsius int, u Units) string {
	if u == Imperial {
		f := math.Round(float64(celsius)*9/5 + 32)
		return fmt.Sprintf("%d°F", int(f))
	}
	return fmt.Sprintf("%d°C", celsius)
}

// FormatWind prints a km/h reading in units with one decimal.
func FormatWind(kmh float64, u Units) string {
	if u == Imperial {
		return fmt.Sprintf("Wind: %.1f mph", kmh*0.621371)
	}
	return fmt.Sprintf("Wind: %.1f km/h", kmh)
}

// Source supplies the current observation.
type Source interface {
	Current() (Weather, error)
}

// Cycle is a Source that steps through fixed readings, stamping each with
// the time it is returned.
type Cycle struct {
	readings []Weather
	next     int
	now      func() time.Time
}

// NewCycle creates a source over readings. A nil now uses time.Now.
func NewCycle(now func() time.Time, readings ...Weather) *Cycle {
	if now == nil {
		now = time.Now
	}
	return &Cycle{readings: readings, now: now}
}

// Current returns the next reading, wrapping around at the end.
func (c *Cycle) Current() (Weather, error) {
	if len(c.readings) == 0 {
		return Weather{}, ErrNoReadings
	}
	w := c.readings[c.next%len(c.readings)]
	c.next++
	w.Updated = c.now()
	return w, nil
}

// SampleReadings returns the demo observations for San Francisco.
func SampleReadings() []Weather {
	return []Weather{
		{
			Location:    "San Francisco",
			Temperature: 18,
			Condition:   "Partly Cloudy",
			Humidity:    72,
			WindSpeed:   12.5,
			Lat:         37.7749,
			Lon:         -122.4194,
		},
		{
			Location:    "San Francisco",
			Temperature: 20,
			Condition:   "Sunny",
			Humidity:    65,
			WindSpeed:   8,
			Lat:         37.7749,
			Lon:         -122.4194,
		},
	}
}
