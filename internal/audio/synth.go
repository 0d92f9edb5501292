// Package audio synthesises the collection chime and click tick with beep
// streamers and plays the rendered PCM through ebiten's audio context.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
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
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s with a linear attack and a linear release ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= releaseStart && e.release > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain. Zero or less is silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Chime timing
const (
	chimeDuration = 900 * time.Millisecond
	chimeAttack   = 8 * time.Millisecond
	chimeRelease  = 820 * time.Millisecond

	clickDuration = 60 * time.Millisecond
	clickAttack   = 2 * time.Millisecond
	clickRelease  = 50 * time.Millisecond
	clickFreq     = 1320.0
)

// pentatonic holds major pentatonic steps in semitones above C5
var pentatonic = []int{0, 2, 4, 7, 9, 12, 14, 16, 19, 21}

// ChimeFrequency returns the pitch for a glyph symbol index. Symbols beyond the
// scale wrap around it.
func ChimeFrequency(symbol int) float64 {
	if symbol < 0 {
		symbol = -symbol
	}
	step := pentatonic[symbol%len(pentatonic)]
	return 523.25 * math.Pow(2, float64(step)/12)
}

// CreateChime generates a soft bell: a sine fundamental with a quieter fifth above
func CreateChime(freq float64, rate beep.SampleRate, vol float64) beep.Streamer {
	fund := NewOscillator(freq, chimeDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, chimeDuration, chimeAttack, chimeRelease, rate)

	fifth := NewOscillator(freq*1.5, chimeDuration, WaveSine, rate)
	fifthShaped := NewEnvelope(fifth, chimeDuration, chimeAttack, chimeRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(fifthShaped, 0.25),
	)
	return newVolume(mixed, vol)
}

// CreateClick generates the short tick played on a mouse ripple
func CreateClick(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(clickFreq, clickDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, clickDuration, clickAttack, clickRelease, rate)
	return newVolume(shaped, vol*0.4)
}

// Render drains s into 16-bit little-endian stereo PCM
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				sample := int16(v * math.MaxInt16)
				out = append(out, byte(sample), byte(uint16(sample)>>8))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
