// Package hud implements a small diagnostic overlay: a set of named display
// items updated once per frame and rendered as lines of text.
//
// Which items appear is controlled by a config string, typically taken from
// an environment variable:
//
//	set := hud.NewItemSet(os.Getenv("DXSTATE_HUD"))
//	set.Add("fps", hud.NewFrameRateItem())
//	set.Add("devinfo", hud.NewInfoItem("Device", deviceName))
//
//	// per frame:
//	set.Update(time.Now())
//	set.Render(renderer)
//
// The config string is either "full" (enable everything), "1" (the default
// item selection), or a comma-separated list of item names.
package hud

import (
	"strings"
	"time"
)

// Pos is a text position in pixels, top-left origin.
type Pos struct {
	X, Y float32
}

// Renderer draws overlay text. TextRenderer in this package rasterizes
// into an image; GPU-backed implementations draw into their own surface.
type Renderer interface {
	// DrawText draws one line of text with its baseline origin at pos.
	DrawText(pos Pos, text string)
}

// Item is one displayed element of the overlay.
type Item interface {
	// Update advances the item's state. Called once per frame before
	// rendering; items that display static data can ignore it.
	Update(now time.Time)

	// Render draws the item at pos and returns the position for the next
	// item.
	Render(r Renderer, pos Pos) Pos
}

// ItemSet holds the enabled overlay items in display order.
type ItemSet struct {
	enabled    map[string]struct{}
	enableFull bool
	items      []Item
}

// NewItemSet parses the config string and returns an empty set that will
// accept items enabled by it. See the package documentation for the config
// format.
func NewItemSet(config string) *ItemSet {
	s := &ItemSet{enabled: make(map[string]struct{})}

	switch config {
	case "full":
		// Just enable everything.
		s.enableFull = true
	case "1":
		s.enabled["devinfo"] = struct{}{}
		s.enabled["fps"] = struct{}{}
	default:
		for _, name := range strings.Split(config, ",") {
			if name = strings.TrimSpace(name); name != "" {
				s.enabled[name] = struct{}{}
			}
		}
	}
	return s
}

// Enabled reports whether items added under name will be displayed.
func (s *ItemSet) Enabled(name string) bool {
	if s.enableFull {
		return true
	}
	_, ok := s.enabled[name]
	return ok
}

// Add appends item under name if the config enabled it; otherwise the item
// is discarded. Items render in the order they were added.
func (s *ItemSet) Add(name string, item Item) {
	if s.Enabled(name) {
		s.items = append(s.items, item)
	}
}

// Len returns the number of items that will be rendered.
func (s *ItemSet) Len() int {
	return len(s.items)
}

// Update advances all items to now.
func (s *ItemSet) Update(now time.Time) {
	for _, item := range s.items {
		item.Update(now)
	}
}

// Render draws all items top to bottom, starting at the overlay origin.
func (s *ItemSet) Render(r Renderer) {
	pos := Pos{X: 8, Y: 8}
	for _, item := range s.items {
		pos = item.Render(r, pos)
	}
}
