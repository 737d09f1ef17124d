package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
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
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

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

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue builders

// cueVolume is the relative loudness of each cue before the master volume
var cueVolume = [core.SoundTypeCount]float64{
	core.SoundInteract: 0.5,
	core.SoundSuccess:  0.7,
	core.SoundError:    0.6,
	core.SoundRing:     0.8,
	core.SoundLose:     0.9,
	core.SoundMeow:     0.6,
}

// interactCue is a short click when a slot accepts the player
func interactCue(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(660.0, parameter.InteractSoundDuration, WaveSquare, rate)
	return NewEnvelope(osc, parameter.InteractSoundDuration, parameter.InteractSoundAttack, parameter.InteractSoundRelease, rate)
}

// successCue is a rising two-note chime for a solved puzzle
func successCue(rate beep.SampleRate) beep.Streamer {
	// B5
	n1 := NewOscillator(987.77, parameter.SuccessSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.SuccessSoundNote1Duration, parameter.SuccessSoundAttack, parameter.SuccessSoundNote1Release, rate)

	// E6
	n2 := NewOscillator(1318.51, parameter.SuccessSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.SuccessSoundNote2Duration, parameter.SuccessSoundAttack, parameter.SuccessSoundNote2Release, rate)

	return beep.Seq(n1Shaped, n2Shaped)
}

// errorCue is a low saw buzz for a wrong answer
func errorCue(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(100.0, parameter.ErrorSoundDuration, WaveSaw, rate)
	return NewEnvelope(osc, parameter.ErrorSoundDuration, parameter.ErrorSoundAttack, parameter.ErrorSoundRelease, rate)
}

// ringCue is a phone-like ring: two close sines beating against each other
func ringCue(rate beep.SampleRate) beep.Streamer {
	lo := NewOscillator(440.0, parameter.RingSoundDuration, WaveSine, rate)
	loShaped := NewEnvelope(lo, parameter.RingSoundDuration, parameter.RingSoundAttack, parameter.RingSoundRelease, rate)

	hi := NewOscillator(480.0, parameter.RingSoundDuration, WaveSine, rate)
	hiShaped := NewEnvelope(hi, parameter.RingSoundDuration, parameter.RingSoundAttack, parameter.RingSoundRelease, rate)

	return beep.Mix(
		newVolume(loShaped, 0.5),
		newVolume(hiShaped, 0.5),
	)
}

// loseCue is a falling noise sweep layered over a low saw
func loseCue(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.LoseSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.LoseSoundDuration, parameter.LoseSoundAttack, parameter.LoseSoundRelease, rate)

	drone := NewOscillator(55.0, parameter.LoseSoundDuration, WaveSaw, rate)
	droneShaped := NewEnvelope(drone, parameter.LoseSoundDuration, parameter.LoseSoundAttack, parameter.LoseSoundRelease, rate)

	return beep.Mix(
		newVolume(noiseShaped, 0.3),
		newVolume(droneShaped, 0.7),
	)
}

// meowCue is a high-then-falling pair of sines
func meowCue(rate beep.SampleRate) beep.Streamer {
	hi := NewOscillator(740.0, parameter.MeowSoundNote1Duration, WaveSine, rate)
	hiShaped := NewEnvelope(hi, parameter.MeowSoundNote1Duration, parameter.MeowSoundAttack, parameter.MeowSoundNote1Release, rate)

	lo := NewOscillator(520.0, parameter.MeowSoundNote2Duration, WaveSine, rate)
	loShaped := NewEnvelope(lo, parameter.MeowSoundNote2Duration, parameter.MeowSoundAttack, parameter.MeowSoundNote2Release, rate)

	return beep.Seq(hiShaped, loShaped)
}

// Cue returns the streamer for a sound type at the given master volume, nil for unknown types
func Cue(sound core.SoundType, rate beep.SampleRate, master float64) beep.Streamer {
	var s beep.Streamer
	switch sound {
	case core.SoundInteract:
		s = interactCue(rate)
	case core.SoundSuccess:
		s = successCue(rate)
	case core.SoundError:
		s = errorCue(rate)
	case core.SoundRing:
		s = ringCue(rate)
	case core.SoundLose:
		s = loseCue(rate)
	case core.SoundMeow:
		s = meowCue(rate)
	default:
		return nil
	}
	return newVolume(s, cueVolume[sound]*master)
}

// CueDuration returns the playback length of a sound type
func CueDuration(sound core.SoundType) time.Duration {
	switch sound {
	case core.SoundInteract:
		return parameter.InteractSoundDuration
	case core.SoundSuccess:
		return parameter.SuccessSoundNote1Duration + parameter.SuccessSoundNote2Duration
	case core.SoundError:
		return parameter.ErrorSoundDuration
	case core.SoundRing:
		return parameter.RingSoundDuration
	case core.SoundLose:
		return parameter.LoseSoundDuration
	case core.SoundMeow:
		return parameter.MeowSoundNote1Duration + parameter.MeowSoundNote2Duration
	default:
		return 0
	}
}
