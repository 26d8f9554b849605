package main

import (
	"math"
	"testing"
)

func TestBuzzStream(t *testing.T) {
	g := newBuzz(sampleRate, 0.75)
	samples := make([][2]float64, 512)
	n, ok := g.Stream(samples)
	if n != len(samples) || !ok {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(samples))
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v", g.Err())
	}
	peak := 0.0
	for _, s := range samples {
		if s[0] != s[1] {
			t.Fatal("buzz should be mono")
		}
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > g.amplitude {
		t.Errorf("peak = %v, want in (0, %v]", peak, g.amplitude)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 at the start of the attack", samples[0][0])
	}
}

func TestBuzzStrengthScales(t *testing.T) {
	soft, hard := newBuzz(sampleRate, 0.1), newBuzz(sampleRate, 5)
	if soft.freq >= hard.freq || soft.amplitude >= hard.amplitude {
		t.Error("stronger pulses should be higher and louder")
	}
	if hard.amplitude != 0.25 {
		t.Errorf("amplitude = %v, want clamped 0.25", hard.amplitude)
	}
}
