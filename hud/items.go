package hud

import (
	"fmt"
	"time"
)

// lineHeight is the vertical advance between overlay lines, in pixels.
const lineHeight float32 = 16

// InfoItem displays a static "Label: value" line. Use it for device names,
// driver versions, and similar data that never changes per frame.
type InfoItem struct {
	text string
}

// NewInfoItem creates an info item displaying "label: value".
func NewInfoItem(label, value string) *InfoItem {
	return &InfoItem{text: label + ": " + value}
}

// Update does nothing; the displayed text is static.
func (it *InfoItem) Update(time.Time) {}

// Render draws the line and advances the position.
func (it *InfoItem) Render(r Renderer, pos Pos) Pos {
	r.DrawText(Pos{X: pos.X, Y: pos.Y + lineHeight}, it.text)
	return Pos{X: pos.X, Y: pos.Y + lineHeight}
}

// fpsUpdateInterval is how often the displayed frame rate is recomputed.
const fpsUpdateInterval = 500 * time.Millisecond

// FrameRateItem displays the frame rate, averaged over half-second windows.
// Call Update once per frame.
type FrameRateItem struct {
	text       string
	frameCount int
	lastUpdate time.Time
}

// NewFrameRateItem creates a frame-rate item.
func NewFrameRateItem() *FrameRateItem {
	return &FrameRateItem{text: "FPS:"}
}

// Update counts the frame and recomputes the display text once per
// interval. The first call only starts the window.
func (it *FrameRateItem) Update(now time.Time) {
	it.frameCount++

	if it.lastUpdate.IsZero() {
		it.lastUpdate = now
		it.frameCount = 0
		return
	}

	elapsed := now.Sub(it.lastUpdate)
	if elapsed < fpsUpdateInterval {
		return
	}

	fps := float64(it.frameCount) * float64(time.Second) / float64(elapsed)
	it.text = fmt.Sprintf("FPS: %.0f", fps)
	it.frameCount = 0
	it.lastUpdate = now
}

// Render draws the line and advances the position.
func (it *FrameRateItem) Render(r Renderer, pos Pos) Pos {
	r.DrawText(Pos{X: pos.X, Y: pos.Y + lineHeight}, it.text)
	return Pos{X: pos.X, Y: pos.Y + lineHeight}
}
