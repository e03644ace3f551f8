package sound

import (
	"dr-fingers/internal/utils"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// FlyingGenerator - бесконечный гул полёта: пила с медленным вибрато и шумом
type FlyingGenerator struct {
	sr    beep.SampleRate
	rng   *utils.PRNGService
	pos   int
	phase float64
}

// NewFlyingGenerator creates the looped movement hum
func NewFlyingGenerator(sr beep.SampleRate, seed int64) *FlyingGenerator {
	return &FlyingGenerator{sr: sr, rng: utils.NewPRNGService(seed)}
}

func (g *FlyingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Частота колеблется вокруг 110 Гц
		freq := 110 + 12*math.Sin(2*math.Pi*3*t)
		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= 1
		}

		saw := 2 * (g.phase - 0.5)
		sample := 0.35*saw + 0.25*math.Sin(2*math.Pi*g.phase) + 0.05*g.rng.Signed()

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FlyingGenerator) Err() error {
	return nil
}

// ChirpGenerator - короткий восходящий свип для прыжка
type ChirpGenerator struct {
	sr       beep.SampleRate
	pos      int
	total    int
	from, to float64
	phase    float64
}

// NewChirpGenerator creates a sweep from `from` to `to` Hz over d
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, total: sr.N(d), from: from, to: to}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := utils.Lerp(g.from, g.to, progress)
		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= 1
		}

		// Линейное затухание к концу
		sample := math.Sin(2*math.Pi*g.phase) * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// withVolume оборачивает поток в линейную громкость vol.
// math.Log2(0) is -Inf, so zero volume becomes silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// FlyingSound возвращает бесконечный поток гула с заданной громкостью
func FlyingSound(sr beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(NewFlyingGenerator(sr, 1), vol)
}

// JumpChirp возвращает конечный поток звука прыжка
func JumpChirp(sr beep.SampleRate, vol float64, d time.Duration) beep.Streamer {
	return withVolume(NewChirpGenerator(sr, 330, 880, d), vol)
}
