package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator produces a sine tone that glides linearly from one
// frequency to another over a period, then starts the glide again.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	period   int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from `from` Hz to `to` Hz.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, period time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		period: max(sr.N(period), 1),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos%g.period) / float64(g.period)
		freq := g.from + (g.to-g.from)*progress

		// Accumulate phase so the glide stays continuous.
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		envelope := 1.0 - 0.7*progress
		sample := 0.2 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// NoiseGenerator produces white noise under a fast exponential decay.
type NoiseGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewNoiseGenerator creates a noise generator. Equal seeds produce equal
// output.
func NewNoiseGenerator(sr beep.SampleRate, seed int64) *NoiseGenerator {
	return &NoiseGenerator{
		sr:   sr,
		seed: seed & 0x7fffffff,
	}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 12)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*70*t)
		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
