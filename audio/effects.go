package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/bounce/physics"
)

const (
	bounceDuration = 45 * time.Millisecond
	bounceRelease  = 35 * time.Millisecond
	bounceFreqX    = 330.0 // E4, side walls
	bounceFreqY    = 392.0 // G4, top/bottom walls

	hitNoteDuration = 70 * time.Millisecond
	hitTailDuration = 220 * time.Millisecond
	hitFreqLow      = 988.0  // B5
	hitFreqHigh     = 1319.0 // E6
)

// envelope applies linear attack/release shaping to a stream and ends it after duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over s
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if rest := e.totalSamples - e.position; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear 0-1 volume.
// math.Log2(0) is -Inf, so 0 volume is silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setLinearVolume(v, vol)
	return v
}

func setLinearVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}

// tone returns a shaped sine note
func tone(rate beep.SampleRate, freq float64, duration, release time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.0fHz: %w", freq, err)
	}
	return NewEnvelope(sine, duration, 2*time.Millisecond, release, rate), nil
}

// CreateBounceSound generates a short knock, pitched by which wall was hit
func CreateBounceSound(rate beep.SampleRate, contact physics.Contact) (beep.Streamer, error) {
	freq := bounceFreqX
	if contact&physics.ContactX == 0 && contact&physics.ContactY != 0 {
		freq = bounceFreqY
	}

	knock, err := tone(rate, freq, bounceDuration, bounceRelease)
	if err != nil {
		return nil, err
	}
	return newVolume(knock, 0.6), nil
}

// CreateHitSound generates a two-note chime for a scored click
func CreateHitSound(rate beep.SampleRate) (beep.Streamer, error) {
	low, err := tone(rate, hitFreqLow, hitNoteDuration, 10*time.Millisecond)
	if err != nil {
		return nil, err
	}
	high, err := tone(rate, hitFreqHigh, hitTailDuration, 180*time.Millisecond)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Seq(low, high), 0.5), nil
}
