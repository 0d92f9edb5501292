// Package hud draws the screen-space overlay of the camera walk: control hints,
// discovery counters, a mini-map that shows only the player, and fading toasts.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/camerawalk/internal/config"
	"chosenoffset.com/camerawalk/internal/render"
	"chosenoffset.com/camerawalk/internal/world"
)

// Panel geometry in screen pixels
const (
	panelX      = 12
	panelY      = 12
	panelWidth  = 360
	panelHeight = 78
	panelRadius = 14

	miniGap    = 14
	miniWidth  = 120
	miniInset  = 14
	miniRadius = 10
)

// maxMessages bounds the toast stack; the oldest is dropped first
const maxMessages = 4

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// HUD manages the heads-up display
type HUD struct {
	config       *config.HUDConfig
	screenWidth  int
	screenHeight int

	stats world.Stats

	// Player position as a fraction of the world size
	playerFX, playerFY float64

	messages []Message
}

// New creates a new HUD with the given configuration
func New(cfg *config.HUDConfig, screenWidth, screenHeight int) *HUD {
	if cfg == nil {
		cfg = &config.DefaultConfig().HUD
	}
	return &HUD{
		config:       cfg,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		playerFX:     0.5,
		playerFY:     0.5,
	}
}

// SetStats updates the discovery counters
func (h *HUD) SetStats(stats world.Stats) {
	h.stats = stats
}

// SetPlayerPosition records where the player is in a world of the given size
func (h *HUD) SetPlayerPosition(x, y, worldWidth, worldHeight float64) {
	h.playerFX = world.Clamp(x/worldWidth, 0, 1)
	h.playerFY = world.Clamp(y/worldHeight, 0, 1)
}

// ShowMessage adds a new message to be displayed on screen.
func (h *HUD) ShowMessage(text string) {
	if n := len(h.messages); n >= maxMessages {
		h.messages = append(h.messages[:0], h.messages[n-maxMessages+1:]...)
	}
	h.messages = append(h.messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
}

// Messages returns the messages still on screen
func (h *HUD) Messages() []Message {
	return h.messages
}

// Update ages the messages by dt seconds
func (h *HUD) Update(dt float64) {
	active := h.messages[:0]
	for _, msg := range h.messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	h.messages = active
}

// CounterLine is the discovery summary shown in the panel
func (h *HUD) CounterLine() string {
	return fmt.Sprintf("Discovered: %d/%d   Collected: %d/%d",
		h.stats.Discovered, h.stats.Total, h.stats.Collected, h.stats.Total)
}

// MiniMapPoint returns the screen position of the player dot
func (h *HUD) MiniMapPoint() (float64, float64) {
	x0, y0, w, hh := h.miniFrame()
	return x0 + h.playerFX*w, y0 + h.playerFY*hh
}

// miniFrame is the inner rectangle of the mini-map the dot moves in
func (h *HUD) miniFrame() (x, y, w, hh float64) {
	mx := float64(panelX + panelWidth + miniGap)
	return mx + miniInset, panelY + miniInset, miniWidth - 2*miniInset, panelHeight - 2*miniInset
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(c *render.Canvas) {
	alpha := uint8(world.Clamp(h.config.Opacity, 0, 1) * 255)
	panelColor := color.NRGBA{0, 0, 0, alpha}

	c.RoundRect(panelX, panelY, panelWidth, panelHeight, panelRadius, panelColor)

	y := float64(panelY + 8)
	h.drawText(c, h.config.Title, panelX+12, y, 14, color.NRGBA{235, 235, 235, 255})
	y += 20

	if h.config.ShowControls {
		h.drawText(c, "Move: WASD / Arrows", panelX+12, y, 12, color.NRGBA{210, 210, 210, 255})
		y += 16
		h.drawText(c, "Collect near a symbol: hold SPACE", panelX+12, y, 12, color.NRGBA{210, 210, 210, 255})
		y += 16
	}

	h.drawText(c, h.CounterLine(), panelX+12, y, 12, color.NRGBA{210, 210, 210, 255})

	if h.config.ShowMiniMap {
		h.drawMiniMap(c, panelColor)
	}

	h.drawMessages(c)
}

// drawMiniMap shows the player position only; glyphs stay a secret
func (h *HUD) drawMiniMap(c *render.Canvas, panelColor color.Color) {
	mx := float64(panelX + panelWidth + miniGap)
	c.RoundRect(mx, panelY, miniWidth, panelHeight, panelRadius, panelColor)

	fx, fy, fw, fh := h.miniFrame()
	c.RoundRectOutline(fx, fy, fw, fh, miniRadius, 1, color.NRGBA{255, 255, 255, 40})

	px, py := h.MiniMapPoint()
	c.Circle(px, py, 4, color.NRGBA{235, 250, 255, 200})
}

func (h *HUD) drawMessages(c *render.Canvas) {
	y := float64(h.screenHeight) - 28
	for i := len(h.messages) - 1; i >= 0; i-- {
		msg := h.messages[i]
		alpha := uint8(235 * world.Clamp(msg.TimeLeft/msg.MaxTime, 0, 1))
		h.drawText(c, msg.Text, 24, y, 13, color.NRGBA{220, 240, 255, alpha})
		y -= 18
	}
}

// drawText draws text with a shadow for readability
func (h *HUD) drawText(c *render.Canvas, text string, x, y, size float64, clr color.NRGBA) {
	shadow := color.NRGBA{0, 0, 0, clr.A / 2}
	c.Text(text, x+1, y+1, size, shadow)
	c.Text(text, x, y, size, clr)
}
