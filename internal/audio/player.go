package audio

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"chosenoffset.com/camerawalk/internal/config"
)

// voice is one playing sound
type voice interface {
	Play()
	Pause()
	IsPlaying() bool
	Close() error
}

// output starts voices from PCM
type output interface {
	IsReady() bool
	NewVoice(pcm []byte) voice
}

type ebitenOutput struct {
	ctx *audio.Context
}

func (o ebitenOutput) IsReady() bool { return o.ctx.IsReady() }

func (o ebitenOutput) NewVoice(pcm []byte) voice {
	return o.ctx.NewPlayerFromBytes(pcm)
}

// Player plays bank sounds through an ebiten audio context
type Player struct {
	out    output
	bank   *Bank
	muted  bool
	voices []voice
}

// NewPlayer creates the audio context. Only one may exist per process.
func NewPlayer(cfg config.AudioConfig) *Player {
	return newPlayer(ebitenOutput{ctx: audio.NewContext(cfg.SampleRate)}, NewBank(cfg.SampleRate, cfg.Volume))
}

func newPlayer(out output, bank *Bank) *Player {
	return &Player{out: out, bank: bank}
}

// PlayCollect plays the chime for a collected glyph's symbol
func (p *Player) PlayCollect(symbol int) {
	p.play(p.bank.Chime(symbol))
}

// PlayClick plays the ripple tick
func (p *Player) PlayClick() {
	p.play(p.bank.Click())
}

// SetMuted silences new sounds and stops the ones playing
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
	if muted {
		p.stopAll()
	}
}

// IsMuted reports whether the player is silenced
func (p *Player) IsMuted() bool {
	return p.muted
}

// Playing returns how many voices are still sounding
func (p *Player) Playing() int {
	p.prune()
	return len(p.voices)
}

func (p *Player) play(pcm []byte) {
	p.prune()
	if p.muted || len(pcm) == 0 {
		return
	}
	// The device opens asynchronously; sounds before then are dropped
	if !p.out.IsReady() {
		return
	}

	v := p.out.NewVoice(pcm)
	v.Play()
	p.voices = append(p.voices, v)
}

// prune closes voices that finished playing
func (p *Player) prune() {
	active := p.voices[:0]
	for _, v := range p.voices {
		if v.IsPlaying() {
			active = append(active, v)
			continue
		}
		if err := v.Close(); err != nil {
			log.Printf("Warning: failed to close audio voice: %v", err)
		}
	}
	clear(p.voices[len(active):])
	p.voices = active
}

func (p *Player) stopAll() {
	for _, v := range p.voices {
		v.Pause()
		if err := v.Close(); err != nil {
			log.Printf("Warning: failed to close audio voice: %v", err)
		}
	}
	p.voices = nil
}
