// Package audio plays short tones when the snake eats or dies.
package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a single sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	EatTone   = Tone{Freq: 880, Duration: 50 * time.Millisecond}
	DeathTone = Tone{Freq: 220, Duration: 250 * time.Millisecond}
)

// Cues plays game event sounds. The zero value is silent.
type Cues struct {
	enabled bool
}

// New initializes the speaker. When enabled is false, or the speaker cannot be
// opened, the returned Cues stays silent.
func New(enabled bool) (*Cues, error) {
	c := &Cues{}
	if !enabled {
		return c, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, fmt.Errorf("init speaker: %w", err)
	}
	c.enabled = true
	return c, nil
}

func (c *Cues) Enabled() bool { return c != nil && c.enabled }

func (c *Cues) Eat() { c.play(EatTone) }

func (c *Cues) Death() { c.play(DeathTone) }

func (c *Cues) play(t Tone) {
	if !c.Enabled() {
		return
	}
	s, err := Streamer(t)
	if err != nil {
		log.Printf("[snake] tone skipped: %v", err)
		return
	}
	speaker.Play(s)
}

// Streamer renders t as a finite beep stream.
func Streamer(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("sine %vHz: %w", t.Freq, err)
	}
	return beep.Take(sampleRate.N(t.Duration), sine), nil
}

func (c *Cues) Close() {
	if c.Enabled() {
		speaker.Close()
		c.enabled = false
	}
}
