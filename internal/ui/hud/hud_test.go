package hud

import (
	"strings"
	"testing"

	"chosenoffset.com/camerawalk/internal/config"
	"chosenoffset.com/camerawalk/internal/render"
	"chosenoffset.com/camerawalk/internal/render/rendertest"
	"chosenoffset.com/camerawalk/internal/world"
)

func TestCounterLine(t *testing.T) {
	h := New(nil, 900, 540)
	h.SetStats(world.Stats{Discovered: 4, Collected: 1, Total: 26})

	want := "Discovered: 4/26   Collected: 1/26"
	if got := h.CounterLine(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestMiniMapPointMapsWorldCorners(t *testing.T) {
	h := New(nil, 900, 540)

	tests := []struct {
		name   string
		x, y   float64
		wx, wy float64
	}{
		{"top-left", 0, 0, 400, 26},
		{"bottom-right", 3600, 2200, 492, 76},
		{"centre", 1800, 1100, 446, 51},
		{"clamped", -500, 9999, 400, 76},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.SetPlayerPosition(tt.x, tt.y, 3600, 2200)
			px, py := h.MiniMapPoint()
			if px != tt.wx || py != tt.wy {
				t.Errorf("Expected (%g, %g), got (%g, %g)", tt.wx, tt.wy, px, py)
			}
		})
	}
}

func TestMessagesFade(t *testing.T) {
	h := New(nil, 900, 540)
	h.ShowMessage("first")
	h.Update(2)
	h.ShowMessage("second")

	if len(h.Messages()) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(h.Messages()))
	}

	h.Update(1.5)
	msgs := h.Messages()
	if len(msgs) != 1 || msgs[0].Text != "second" {
		t.Fatalf("Expected only the second message left, got %+v", msgs)
	}

	h.Update(2)
	if len(h.Messages()) != 0 {
		t.Errorf("Expected all messages gone, got %+v", h.Messages())
	}
}

func TestMessagesAreCapped(t *testing.T) {
	h := New(nil, 900, 540)
	for _, text := range []string{"a", "b", "c", "d", "e", "f"} {
		h.ShowMessage(text)
	}

	msgs := h.Messages()
	if len(msgs) != maxMessages {
		t.Fatalf("Expected %d messages, got %d", maxMessages, len(msgs))
	}
	if msgs[0].Text != "c" || msgs[len(msgs)-1].Text != "f" {
		t.Errorf("Expected the newest messages c..f, got %+v", msgs)
	}
}

func TestDrawShowsCountersAndPlayerDot(t *testing.T) {
	rec := rendertest.NewRecorder()
	c := render.NewCanvas(rec, rendertest.NewImage(900, 540))

	h := New(nil, 900, 540)
	h.SetStats(world.Stats{Discovered: 2, Collected: 0, Total: 3})
	h.SetPlayerPosition(1800, 1100, 3600, 2200)
	h.ShowMessage("hello")
	h.Draw(c)

	texts := strings.Join(rec.Texts(), "\n")
	for _, want := range []string{"Meditative Camera Walk", "hold SPACE", "Discovered: 2/3", "hello"} {
		if !strings.Contains(texts, want) {
			t.Errorf("Expected HUD text %q, got:\n%s", want, texts)
		}
	}

	circles := rec.Find("circle")
	if len(circles) != 1 {
		t.Fatalf("Expected only the player dot on the mini-map, got %d circles", len(circles))
	}
	if circles[0].X != 446 || circles[0].Y != 51 {
		t.Errorf("Expected dot at (446, 51), got (%g, %g)", circles[0].X, circles[0].Y)
	}
}

func TestDrawRespectsConfig(t *testing.T) {
	rec := rendertest.NewRecorder()
	c := render.NewCanvas(rec, rendertest.NewImage(900, 540))

	cfg := config.DefaultConfig().HUD
	cfg.ShowControls = false
	cfg.ShowMiniMap = false
	New(&cfg, 900, 540).Draw(c)

	if rec.Count("circle") != 0 {
		t.Error("Expected no mini-map dot when the mini-map is hidden")
	}
	for _, s := range rec.Texts() {
		if strings.Contains(s, "WASD") {
			t.Errorf("Expected control hints hidden, found %q", s)
		}
	}
}
