package hud

import (
	"testing"
	"time"
)

// captureRenderer records DrawText calls for assertions.
type captureRenderer struct {
	lines []string
	pos   []Pos
}

func (c *captureRenderer) DrawText(pos Pos, text string) {
	c.lines = append(c.lines, text)
	c.pos = append(c.pos, pos)
}

func TestNewItemSetConfigParsing(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		enabled []string
		blocked []string
	}{
		{"empty", "", nil, []string{"fps", "devinfo", "anything"}},
		{"default selection", "1", []string{"fps", "devinfo"}, []string{"frametime"}},
		{"full", "full", []string{"fps", "devinfo", "frametime", "anything"}, nil},
		{"single name", "fps", []string{"fps"}, []string{"devinfo"}},
		{"comma list", "fps,frametime", []string{"fps", "frametime"}, []string{"devinfo"}},
		{"spaces and empties", " fps, ,devinfo,", []string{"fps", "devinfo"}, []string{"frametime"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewItemSet(tt.config)
			for _, name := range tt.enabled {
				if !s.Enabled(name) {
					t.Errorf("Enabled(%q) = false, want true", name)
				}
			}
			for _, name := range tt.blocked {
				if s.Enabled(name) {
					t.Errorf("Enabled(%q) = true, want false", name)
				}
			}
		})
	}
}

func TestItemSetAddGating(t *testing.T) {
	s := NewItemSet("fps")
	s.Add("fps", NewFrameRateItem())
	s.Add("devinfo", NewInfoItem("Device", "test"))

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (devinfo not enabled)", s.Len())
	}
}

func TestItemSetRenderOrderAndPositions(t *testing.T) {
	s := NewItemSet("full")
	s.Add("a", NewInfoItem("A", "1"))
	s.Add("b", NewInfoItem("B", "2"))

	var rec captureRenderer
	s.Render(&rec)

	if len(rec.lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(rec.lines))
	}
	if rec.lines[0] != "A: 1" || rec.lines[1] != "B: 2" {
		t.Errorf("lines = %v, want [A: 1, B: 2]", rec.lines)
	}
	if rec.pos[1].Y <= rec.pos[0].Y {
		t.Errorf("second line at y=%v, want below first at y=%v", rec.pos[1].Y, rec.pos[0].Y)
	}
	if rec.pos[0].X != rec.pos[1].X {
		t.Errorf("lines not left-aligned: x=%v vs x=%v", rec.pos[0].X, rec.pos[1].X)
	}
}

func TestFrameRateItem(t *testing.T) {
	it := NewFrameRateItem()
	start := time.Unix(1000, 0)

	// First update establishes the measurement window.
	it.Update(start)

	// 60 frames over exactly one second.
	for i := 1; i <= 60; i++ {
		it.Update(start.Add(time.Duration(i) * time.Second / 60))
	}

	var rec captureRenderer
	it.Render(&rec, Pos{X: 8, Y: 8})

	if len(rec.lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(rec.lines))
	}
	if rec.lines[0] != "FPS: 60" {
		t.Errorf("line = %q, want %q", rec.lines[0], "FPS: 60")
	}
}

func TestFrameRateItemBeforeFirstInterval(t *testing.T) {
	it := NewFrameRateItem()
	start := time.Unix(1000, 0)
	it.Update(start)
	it.Update(start.Add(10 * time.Millisecond))

	var rec captureRenderer
	it.Render(&rec, Pos{})

	// Not enough elapsed time to compute a rate yet.
	if rec.lines[0] != "FPS:" {
		t.Errorf("line = %q, want placeholder %q", rec.lines[0], "FPS:")
	}
}

func TestItemSetUpdatePropagates(t *testing.T) {
	s := NewItemSet("full")
	it := NewFrameRateItem()
	s.Add("fps", it)

	start := time.Unix(1000, 0)
	s.Update(start)
	s.Update(start.Add(time.Second))

	var rec captureRenderer
	s.Render(&rec)
	if rec.lines[0] == "FPS:" {
		t.Error("Update did not reach the item: frame rate never computed")
	}
}
