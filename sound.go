package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	clickSampleRate = beep.SampleRate(44100)
	clickTone       = 880
	clickLength     = 30 * time.Millisecond
)

// clicker plays a short tone as tap feedback.
type clicker struct {
	sampleRate beep.SampleRate
}

func newClicker() (*clicker, error) {
	sr := clickSampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return &clicker{sampleRate: sr}, nil
}

// Play starts a click without waiting for it to finish.
func (c *clicker) Play() {
	sine, err := generators.SineTone(c.sampleRate, clickTone)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.sampleRate.N(clickLength), sine))
}

func (c *clicker) Close() {
	speaker.Close()
}
