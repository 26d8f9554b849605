package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/phanxgames/ranged"
)

const sampleRate = beep.SampleRate(44100)

// audioHaptics renders haptic pulses as short buzzes, for machines without
// a rumble-capable gamepad. Stronger pulses are louder and higher.
type audioHaptics struct {
	mixer *beep.Mixer
}

func newAudioHaptics() (*audioHaptics, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	a := &audioHaptics{mixer: &beep.Mixer{}}
	speaker.Play(a.mixer)
	return a, nil
}

// Pulse implements ranged.Haptics.
func (a *audioHaptics) Pulse(p ranged.HapticPulse) {
	n := sampleRate.N(time.Duration(p.Duration * float64(time.Second)))
	if n <= 0 || p.Strength <= 0 {
		return
	}
	speaker.Lock()
	a.mixer.Add(beep.Take(n, newBuzz(sampleRate, p.Strength)))
	speaker.Unlock()
}

// Close stops playback and releases the audio device.
func (a *audioHaptics) Close() {
	speaker.Clear()
	speaker.Close()
}

// buzz is a low square-ish tone with a short attack.
type buzz struct {
	sr        beep.SampleRate
	freq      float64
	amplitude float64
	pos       int
}

func newBuzz(sr beep.SampleRate, strength float64) *buzz {
	s := math.Min(strength, 1)
	return &buzz{
		sr:        sr,
		freq:      80 + 160*s,
		amplitude: 0.25 * s,
	}
}

func (g *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := math.Sin(2 * math.Pi * g.freq * t)
		sample += 0.5 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.25 * math.Sin(2*math.Pi*g.freq*3*t)

		attack := math.Min(t/0.005, 1.0)
		sample *= attack * g.amplitude / 1.75

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzz) Err() error {
	return nil
}
