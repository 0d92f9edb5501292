// Package rendertest provides in-memory render backends for tests. Nothing is
// rasterised; every call is recorded so tests can assert on what was drawn.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/camerawalk/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{SX: 1, SY: 1} }
	}
}

// Op is a single recorded draw call.
type Op struct {
	Kind   string // "circle", "ring", "rect", "roundrect", "roundrect-outline", "polygon", "polyline", "text", "image"
	X, Y   float64
	W, H   float64
	Radius float64
	Points []render.Point
	Text   string
	Color  color.Color
	Dst    render.Image
}

// Alpha returns the op color's alpha in 0-255.
func (o Op) Alpha() uint8 {
	if o.Color == nil {
		return 0
	}
	_, _, _, a := color.NRGBAModel.Convert(o.Color).RGBA()
	return uint8(a >> 8)
}

// Recorder is a render.Renderer that records every call.
type Recorder struct {
	Ops []Op
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset forgets recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Find returns the ops of kind.
func (r *Recorder) Find(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return NewImage(b.Dx(), b.Dy())
}

func (r *Recorder) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X: float64(x), Y: float64(y), Radius: float64(radius), Color: clr, Dst: dst})
}

func (r *Recorder) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "ring", X: float64(x), Y: float64(y), Radius: float64(radius), Color: clr, Dst: dst})
}

func (r *Recorder) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: float64(x), Y: float64(y), W: float64(width), H: float64(height), Color: clr, Dst: dst})
}

func (r *Recorder) FillRoundRect(dst render.Image, x, y, width, height, radius float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "roundrect", X: float64(x), Y: float64(y), W: float64(width), H: float64(height), Radius: float64(radius), Color: clr, Dst: dst})
}

func (r *Recorder) StrokeRoundRect(dst render.Image, x, y, width, height, radius, strokeWidth float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "roundrect-outline", X: float64(x), Y: float64(y), W: float64(width), H: float64(height), Radius: float64(radius), Color: clr, Dst: dst})
}

func (r *Recorder) FillPolygon(dst render.Image, points []render.Point, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "polygon", Points: append([]render.Point(nil), points...), Color: clr, Dst: dst})
}

func (r *Recorder) StrokePolyline(dst render.Image, points []render.Point, closed bool, strokeWidth float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "polyline", Points: append([]render.Point(nil), points...), Color: clr, Dst: dst})
}

func (r *Recorder) DrawText(dst render.Image, text string, x, y float64, size float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, Text: text, Color: clr, Dst: dst})
}

// MeasureText uses a fixed advance of 0.6 em per byte.
func (r *Recorder) MeasureText(text string, size float64) (width, height float64) {
	return float64(len(text)) * size * 0.6, size
}

// Image is a render.Image that records fills and image draws.
type Image struct {
	W, H  int
	Fills []color.Color
	Draws []DrawRecord

	// Log, when set, also receives an "image" op per draw so sprites can be
	// ordered against shapes
	Log *Recorder
}

// DrawRecord is one DrawImage call with the transformed source origin.
type DrawRecord struct {
	Src    render.Image
	X, Y   float64 // Where the source's (0, 0) landed
	ScaleX float64
	Tint   color.Color
}

// NewImage creates a fake image of the given size.
func NewImage(width, height int) *Image {
	return &Image{W: width, H: height}
}

func (i *Image) Size() (int, int)     { return i.W, i.H }
func (i *Image) Fill(clr color.Color) { i.Fills = append(i.Fills, clr) }

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	rec := DrawRecord{Src: src, ScaleX: 1}
	if opts != nil {
		rec.Tint = opts.Tint
		if g, ok := opts.GeoM.(*GeoM); ok {
			rec.X, rec.Y = g.Apply(0, 0)
			rec.ScaleX = g.SX
		}
	}
	i.Draws = append(i.Draws, rec)
	if i.Log != nil {
		i.Log.Ops = append(i.Log.Ops, Op{Kind: "image", X: rec.X, Y: rec.Y, Color: rec.Tint, Dst: i})
	}
}

// GeoM is a translate/scale matrix.
type GeoM struct {
	SX, SY float64
	TX, TY float64
}

func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

func (g *GeoM) Scale(sx, sy float64) {
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

func (g *GeoM) Reset() {
	*g = GeoM{SX: 1, SY: 1}
}

// Apply transforms (x, y).
func (g *GeoM) Apply(x, y float64) (float64, float64) {
	return x*g.SX + g.TX, y*g.SY + g.TY
}

// Input is a scripted render.InputManager.
type Input struct {
	Pressed map[render.Key]bool
	Just    map[render.Key]bool
	Clicks  map[render.MouseButton]bool
	CursorX int
	CursorY int
}

// NewInput creates an input with nothing pressed.
func NewInput() *Input {
	return &Input{
		Pressed: make(map[render.Key]bool),
		Just:    make(map[render.Key]bool),
		Clicks:  make(map[render.MouseButton]bool),
	}
}

// Press holds key down and marks it just pressed.
func (in *Input) Press(key render.Key) {
	in.Pressed[key] = true
	in.Just[key] = true
}

// Release lets go of key.
func (in *Input) Release(key render.Key) {
	delete(in.Pressed, key)
	delete(in.Just, key)
}

// Click registers a left click at (x, y).
func (in *Input) Click(x, y int) {
	in.CursorX, in.CursorY = x, y
	in.Clicks[render.MouseButtonLeft] = true
}

// EndFrame clears the edge-triggered state, like a real backend does between ticks.
func (in *Input) EndFrame() {
	clear(in.Just)
	clear(in.Clicks)
}

func (in *Input) IsKeyPressed(key render.Key) bool     { return in.Pressed[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.Just[key] }
func (in *Input) GetCursorPosition() (int, int)        { return in.CursorX, in.CursorY }

func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return in.Clicks[button]
}
