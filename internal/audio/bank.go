package audio

import (
	"github.com/gopxl/beep"
)

// Bank renders sounds once and keeps the PCM for replay
type Bank struct {
	rate   beep.SampleRate
	volume float64
	chimes map[int][]byte
	click  []byte
}

// NewBank creates an empty bank for the given sample rate and master volume
func NewBank(sampleRate int, volume float64) *Bank {
	return &Bank{
		rate:   beep.SampleRate(sampleRate),
		volume: volume,
		chimes: make(map[int][]byte),
	}
}

// Chime returns the PCM for the chime of a symbol index
func (b *Bank) Chime(symbol int) []byte {
	pcm, ok := b.chimes[symbol]
	if !ok {
		pcm = Render(CreateChime(ChimeFrequency(symbol), b.rate, b.volume))
		b.chimes[symbol] = pcm
	}
	return pcm
}

// Click returns the PCM for the ripple tick
func (b *Bank) Click() []byte {
	if b.click == nil {
		b.click = Render(CreateClick(b.rate, b.volume))
	}
	return b.click
}
