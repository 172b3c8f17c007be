package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue identifies one of the game's sound effects.
type Cue int

const (
	CueBounce Cue = iota
	CueBreak
	CuePowerup
	CueLevelUp
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueBounce:
		return "bounce"
	case CueBreak:
		return "break"
	case CuePowerup:
		return "powerup"
	case CueLevelUp:
		return "levelup"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates an oscillator that stops after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewPCG(uint64(freq), 0x5eed)), //#nosec G404 -- audio noise, not security
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release && e.release > 0 {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped note with a short attack and a release over its tail.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// CreateBounceSound is a short square blip for paddle and wall hits.
func CreateBounceSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(660, 40*time.Millisecond, WaveSquare, rate), 0.25)
}

// CreateBreakSound is a noise crack over a low thud for destroyed blocks.
func CreateBreakSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	return beep.Mix(
		newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 100*time.Millisecond, rate), 0.3),
		newVolume(tone(110, d, WaveSine, rate), 0.5),
	)
}

// CreatePowerupSound is a rising two-note chime.
func CreatePowerupSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(987.77, 70*time.Millisecond, WaveSine, rate),
		tone(1318.51, 110*time.Millisecond, WaveSine, rate),
	), 0.4)
}

// CreateLevelUpSound is a major arpeggio.
func CreateLevelUpSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(523.25, 90*time.Millisecond, WaveSquare, rate),
		tone(659.25, 90*time.Millisecond, WaveSquare, rate),
		tone(783.99, 90*time.Millisecond, WaveSquare, rate),
		tone(1046.50, 200*time.Millisecond, WaveSquare, rate),
	), 0.2)
}

// SoundFor returns a fresh streamer for a cue, or nil for unknown cues.
func SoundFor(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueBounce:
		return CreateBounceSound(rate)
	case CueBreak:
		return CreateBreakSound(rate)
	case CuePowerup:
		return CreatePowerupSound(rate)
	case CueLevelUp:
		return CreateLevelUpSound(rate)
	default:
		return nil
	}
}
