// Package sketch ties the world simulation to input, drawing and sound. It
// implements render.Game.
package sketch

import (
	"image/color"
	"log"

	"chosenoffset.com/camerawalk/internal/config"
	"chosenoffset.com/camerawalk/internal/render"
	"chosenoffset.com/camerawalk/internal/render/lighting"
	"chosenoffset.com/camerawalk/internal/ui/hud"
	"chosenoffset.com/camerawalk/internal/world"
)

// Sounder plays the sketch's sound effects.
type Sounder interface {
	PlayCollect(symbol int)
	PlayClick()
	SetMuted(muted bool)
	IsMuted() bool
}

// Glow colors
var (
	lanternColor = color.NRGBA{170, 220, 255, 255}
	haloColor    = color.NRGBA{200, 230, 255, 255}
)

// Sketch holds all sketch state and logic.
type Sketch struct {
	ScreenWidth  int
	ScreenHeight int

	World           *world.World
	Renderer        render.Renderer
	InputMgr        render.InputManager
	LightingManager *lighting.Manager
	HUD             *hud.HUD

	// Sound is nil when audio is disabled
	Sound Sounder

	cfg *config.Config
}

// New creates a sketch around an already seeded world.
func New(cfg *config.Config, w *world.World, r render.Renderer, input render.InputManager, sound Sounder) *Sketch {
	s := &Sketch{
		ScreenWidth:     cfg.World.ViewWidth,
		ScreenHeight:    cfg.World.ViewHeight,
		World:           w,
		Renderer:        r,
		InputMgr:        input,
		LightingManager: lighting.NewManager(),
		HUD:             hud.New(&cfg.HUD, cfg.World.ViewWidth, cfg.World.ViewHeight),
		Sound:           sound,
		cfg:             cfg,
	}
	s.LightingManager.SetPlayerLight(0.35, lanternColor)
	s.syncOverlay()
	return s
}

// Update handles one tick of input and simulation.
func (s *Sketch) Update() error {
	dt := 1.0 / float64(s.cfg.World.TPS)

	if s.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrTerminated
	}

	if s.InputMgr.IsKeyJustPressed(render.KeyM) {
		s.toggleMute()
	}

	// Toggle the lantern with L
	if s.InputMgr.IsKeyJustPressed(render.KeyL) {
		on := !s.LightingManager.IsPlayerLightOn()
		s.LightingManager.EnablePlayerLight(on)
		if on {
			s.HUD.ShowMessage("Lantern lit")
		} else {
			s.HUD.ShowMessage("Lantern dimmed")
		}
	}

	if s.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := s.InputMgr.GetCursorPosition()
		s.World.SpawnScreenRipple(float64(x), float64(y))
		if s.Sound != nil {
			s.Sound.PlayClick()
		}
	}

	events := s.World.Step(s.readControls())
	for _, ev := range events {
		s.handleEvent(ev)
	}

	s.updateLights()
	s.syncOverlay()
	s.HUD.Update(dt)

	return nil
}

// Layout returns the sketch's logical screen size.
func (s *Sketch) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.ScreenWidth, s.ScreenHeight
}

func (s *Sketch) readControls() world.Controls {
	in := s.InputMgr
	return world.Controls{
		Left:    in.IsKeyPressed(render.KeyA) || in.IsKeyPressed(render.KeyLeft),
		Right:   in.IsKeyPressed(render.KeyD) || in.IsKeyPressed(render.KeyRight),
		Up:      in.IsKeyPressed(render.KeyW) || in.IsKeyPressed(render.KeyUp),
		Down:    in.IsKeyPressed(render.KeyS) || in.IsKeyPressed(render.KeyDown),
		Collect: in.IsKeyPressed(render.KeySpace),
	}
}

func (s *Sketch) toggleMute() {
	if s.Sound == nil {
		s.HUD.ShowMessage("Audio is off")
		return
	}
	muted := !s.Sound.IsMuted()
	s.Sound.SetMuted(muted)
	if muted {
		s.HUD.ShowMessage("Sound muted")
	} else {
		s.HUD.ShowMessage("Sound on")
	}
}

func (s *Sketch) handleEvent(ev world.Event) {
	g := &s.World.Glyphs[ev.Glyph]
	stats := s.World.Stats()
	log.Printf("Glyph %d %c (%s) %s at (%.0f, %.0f)", g.ID, g.Shape().Rune, g.Shape().Name, ev.Kind, ev.Pos.X, ev.Pos.Y)

	switch ev.Kind {
	case world.EventDiscovered:
		s.HUD.ShowMessage("Discovered: " + g.Shape().Name)
	case world.EventCollected:
		s.LightingManager.RemoveGlyphLight(g.ID)
		if s.Sound != nil {
			s.Sound.PlayCollect(g.Symbol)
		}
		if stats.Collected == stats.Total {
			s.HUD.ShowMessage("Every symbol gathered")
			log.Printf("All %d glyphs collected after %.1fs", stats.Total, s.World.Time())
		} else {
			s.HUD.ShowMessage("Collected: " + g.Shape().Name)
		}
	}
}

// updateLights moves the lantern and keeps a halo on every visible glyph
func (s *Sketch) updateLights() {
	p := s.World.Player
	t := s.World.Time()
	s.LightingManager.UpdatePlayerLight(p.Pos.X, p.Pos.Y, p.Speed(), t)

	for i := range s.World.Glyphs {
		g := &s.World.Glyphs[i]
		if !g.Discovered || g.Collected {
			continue
		}
		intensity := 0.08 + g.Pulse*0.5
		s.LightingManager.SetGlyphLight(g.ID, g.Pos.X, g.Pos.Y+g.Bob(t), g.Radius*1.6, intensity, haloColor)
	}
}

func (s *Sketch) syncOverlay() {
	s.HUD.SetStats(s.World.Stats())
	s.HUD.SetPlayerPosition(s.World.Player.Pos.X, s.World.Player.Pos.Y, s.World.Width, s.World.Height)
}
