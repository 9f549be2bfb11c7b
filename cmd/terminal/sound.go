package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone frequencies in Hz.
const (
	toneReset    = 220
	toneAdvance  = 660
	toneComplete = 880
)

// chime plays short sine tones. A chime that failed to open the speaker stays silent.
type chime struct {
	enabled bool
}

func newChime(mute bool) (*chime, error) {
	if mute {
		return &chime{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &chime{}, err
	}
	return &chime{enabled: true}, nil
}

func (c *chime) play(freq float64, d time.Duration) {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (c *chime) close() {
	if c.enabled {
		speaker.Close()
	}
}
