package sketch

import (
	"image/color"
	"math"

	"chosenoffset.com/camerawalk/internal/render"
	"chosenoffset.com/camerawalk/internal/world"
)

// Draw renders the sketch to the screen.
func (s *Sketch) Draw(screen render.Image) {
	c := render.NewCanvas(s.Renderer, screen)
	t := s.World.Time()

	// Step 1: Far background in screen space
	c.Fill(color.NRGBA{12, 12, 12, 255})
	s.drawParallaxStars(c, t)

	// Step 2: World layer through the camera
	c.Push()
	c.Translate(-s.World.Camera.Pos.X, -s.World.Camera.Pos.Y)
	s.drawWorldBase(c, t)
	s.drawMotes(c)
	s.LightingManager.DrawGlyphLights(c)
	s.drawGlyphs(c, t)
	s.drawRipples(c, world.SpaceWorld)
	s.LightingManager.DrawPlayerLight(c)
	s.drawPlayer(c)
	s.drawMonuments(c)
	c.Pop()

	// Step 3: Screen overlays
	s.drawVignette(c, t)
	s.drawRipples(c, world.SpaceScreen)
	s.HUD.Draw(c)
}

func (s *Sketch) drawParallaxStars(c *render.Canvas, t float64) {
	k := s.cfg.Camera.Parallax
	px := s.World.Camera.Pos.X * k
	py := s.World.Camera.Pos.Y * k
	w, h := float64(s.ScreenWidth), float64(s.ScreenHeight)

	for _, star := range s.World.Stars {
		x := star.Pos.X - px
		y := star.Pos.Y - py
		if x < -50 || x > w+50 || y < -50 || y > h+50 {
			continue
		}
		a := 90 * star.Brightness(t)
		c.Circle(x, y, star.Size/2, color.NRGBA{230, 235, 255, alpha(a)})
	}

	// Vertical wash, strongest at the top
	for y := 0.0; y < h; y += 3 {
		a := world.Lerp(35, 0, y/h)
		c.Rect(0, y, w, 3, color.NRGBA{50, 80, 120, alpha(a)})
	}
}

func (s *Sketch) drawWorldBase(c *render.Canvas, t float64) {
	ww, wh := s.World.Width, s.World.Height
	c.Rect(0, 0, ww, wh, color.NRGBA{18, 26, 38, 255})

	// Faint wandering paths
	pathColor := color.NRGBA{40, 70, 95, 28}
	pts := make([]render.Point, 10)
	for i := 0; i < 14; i++ {
		fi := float64(i)
		x0 := math.Mod(fi*260+120, ww)
		y0 := math.Mod(fi*140+180, wh)
		for k := range pts {
			fk := float64(k)
			x := x0 + fk*160 + math.Sin(t*0.2+fi+fk)*30
			y := y0 + math.Sin(fk*0.9+fi)*120 + math.Cos(t*0.18+fk)*22
			pts[k] = render.Point{X: world.Clamp(x, 0, ww), Y: world.Clamp(y, 0, wh)}
		}
		c.Polyline(pts, false, 2, pathColor)
	}

	// Still islands
	for i := 0; i < 26; i++ {
		fi := float64(i)
		x := math.Mod(fi*310+200, ww)
		y := math.Mod(fi*190+260, wh)
		d := 80 + float64(i%5)*18
		c.Circle(x, y, d/2, color.NRGBA{25, 40, 55, 55})
		c.Circle(x+22, y-14, d*0.72/2, color.NRGBA{22, 36, 50, 40})
	}
}

func (s *Sketch) drawMotes(c *render.Canvas) {
	for _, m := range s.World.Motes {
		c.Circle(m.Pos.X, m.Pos.Y, m.Radius/2, color.NRGBA{210, 240, 255, alpha(m.Alpha)})
	}
}

func (s *Sketch) drawGlyphs(c *render.Canvas, t float64) {
	for i := range s.World.Glyphs {
		g := &s.World.Glyphs[i]
		if g.Collected {
			continue
		}

		y := g.Pos.Y + g.Bob(t)
		sym := g.Shape()

		// Barely there until the camera has seen it
		if !g.Discovered {
			drawSymbol(c, sym, g.Pos.X, y, 18, g.Seed, color.NRGBA{200, 230, 255, 10})
			continue
		}

		pulseA := 110 + 90*math.Sin(t*1.2+g.Seed)
		highlight := g.Pulse * 160

		ring := g.Radius*2.1 + 10*math.Sin(t*2+g.Seed)
		c.Ring(g.Pos.X, g.Pos.Y, ring/2, 2, color.NRGBA{200, 230, 255, alpha(20 + highlight)})

		drawSymbol(c, sym, g.Pos.X, y, 24, g.Seed, color.NRGBA{220, 245, 255, alpha(pulseA + highlight)})

		if s.World.PlayerNear(g) {
			c.Ring(g.Pos.X, g.Pos.Y, g.Radius*1.1, 2, color.NRGBA{240, 250, 255, 110})
		}
	}
}

// drawSymbol draws a glyph's star at the given text size. Each glyph is
// turned by its seed so repeated symbols do not look stamped.
func drawSymbol(c *render.Canvas, sym world.Symbol, x, y, size, seed float64, clr color.NRGBA) {
	pts := symbolPoints(sym, x, y, size, math.Mod(seed, 2*math.Pi/float64(sym.Points)))
	if sym.Hollow {
		c.Polyline(pts, true, 1.5, clr)
		return
	}
	c.Polygon(pts, clr)
}

func (s *Sketch) drawRipples(c *render.Canvas, space world.Space) {
	for _, r := range s.World.Ripples {
		if r.Space != space {
			continue
		}
		c.Ring(r.Pos.X, r.Pos.Y, r.Radius/2, 2, color.NRGBA{235, 250, 255, alpha(r.Alpha)})
	}
}

// drawPlayer draws the inner glow, core and tail. The outer glow is the
// lantern light drawn by the lighting manager.
func (s *Sketch) drawPlayer(c *render.Canvas) {
	p := s.World.Player
	if light, ok := s.LightingManager.PlayerLight(); ok && s.LightingManager.IsPlayerLightOn() {
		// Inner glow spans 1.7/2.6 of the lantern
		c.Circle(p.Pos.X, p.Pos.Y, light.Radius*1.7/2.6, color.NRGBA{200, 240, 255, 60})
	}

	c.Circle(p.Pos.X, p.Pos.Y, p.Radius, color.NRGBA{235, 250, 255, 200})

	tailX := p.Pos.X - p.Vel.X*8
	tailY := p.Pos.Y - p.Vel.Y*8
	c.Circle(tailX, tailY, p.Radius*0.6, color.NRGBA{235, 250, 255, 110})
}

// drawMonuments draws faint rounded frames that anchor the eye
func (s *Sketch) drawMonuments(c *render.Canvas) {
	clr := color.NRGBA{255, 255, 255, 10}
	for i := 0; i < 10; i++ {
		fi := float64(i)
		x := math.Mod(fi*520+380, s.World.Width)
		y := math.Mod(fi*340+420, s.World.Height)
		c.RoundRectOutline(x, y, 140, 90, 16, 2, clr)
	}
}

// drawVignette darkens the screen edges in bands and breathes a slight dim
// over everything.
func (s *Sketch) drawVignette(c *render.Canvas, t float64) {
	sw, sh := c.Size()
	w, h := float64(sw), float64(sh)
	const bands = 14
	const step = 3.0

	for i := 0; i < bands; i++ {
		a := world.Map(float64(i), 0, bands-1, 0, 70)
		inset := float64(bands-1-i)*step + step/2
		radius := 18 * float64(bands-1-i) / (bands - 1)
		c.RoundRectOutline(inset, inset, w-2*inset, h-2*inset, radius, step, color.NRGBA{0, 0, 0, alpha(a)})
	}

	breathe := 0.5 + 0.5*math.Sin(t*0.9)
	c.Rect(0, 0, w, h, color.NRGBA{0, 0, 0, alpha(18 * breathe)})
}
