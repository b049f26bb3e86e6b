// Package audio plays short synthesized cues for game events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound names a cue.
type Sound uint8

const (
	SoundEat Sound = iota
	SoundGameOver
)

// Cues owns the speaker mixer. A zero or uninitialised Cues is silent.
type Cues struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
}

// NewCues returns a silent Cues; call Init to open the speaker.
func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Init opens the default audio device. Failure leaves the Cues silent.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.ready = true
	return nil
}

// Play queues a cue. It never blocks on the device.
func (c *Cues) Play(s Sound) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	speaker.Lock()
	c.mixer.Add(Stream(s))
	speaker.Unlock()
}

// Close silences and releases the device.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.ready = false
}

// Stream returns the finite sample stream for s.
func Stream(s Sound) beep.Streamer {
	switch s {
	case SoundGameOver:
		return beep.Take(sampleRate.N(450*time.Millisecond), newSweep(440, 110, 450*time.Millisecond))
	default:
		return beep.Take(sampleRate.N(80*time.Millisecond), newSweep(660, 990, 80*time.Millisecond))
	}
}

// sweep is a sine tone gliding linearly between two frequencies, with a
// short attack and a linear release.
type sweep struct {
	from, to float64
	length   int
	pos      int
	phase    float64
}

func newSweep(from, to float64, d time.Duration) *sweep {
	return &sweep{from: from, to: to, length: max(sampleRate.N(d), 1)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(sampleRate.N(5 * time.Millisecond))
	for i := range samples {
		t := math.Min(float64(s.pos)/float64(s.length), 1)
		freq := s.from + (s.to-s.from)*t
		s.phase += 2 * math.Pi * freq / float64(sampleRate)

		env := math.Min(float64(s.pos)/attack, 1) * (1 - t)
		v := 0.25 * env * math.Sin(s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }
