// Package carousel tracks which card of a paged list is visible and derives
// the segmented progress bar drawn above it.
package carousel

import (
	"math"

	"github.com/csheth/tinypal/internal/content"
)

// Controller owns the visible index of an ordered card list. It is not safe
// for concurrent use; the TUI update loop is its only caller.
type Controller struct {
	items []content.Item
	index int
}

// New returns a Controller initialized with items.
func New(items []content.Item) *Controller {
	c := &Controller{}
	c.Initialize(items)
	return c
}

// Initialize replaces the list and resets the index to the first card.
func (c *Controller) Initialize(items []content.Item) {
	c.items = append([]content.Item(nil), items...)
	c.index = 0
}

// OnPageSettled maps a scroll offset to a page index, clamped to the list.
// It reports whether the index changed. Out-of-range or non-finite input is
// clamped, never rejected.
func (c *Controller) OnPageSettled(rawOffset, pageWidth float64) bool {
	if len(c.items) == 0 {
		return false
	}
	next := c.clamp(pageIndex(rawOffset, pageWidth))
	if next == c.index {
		return false
	}
	c.index = next
	return true
}

func pageIndex(rawOffset, pageWidth float64) float64 {
	if math.IsNaN(rawOffset) || math.IsNaN(pageWidth) || pageWidth <= 0 {
		return 0
	}
	return math.Round(rawOffset / pageWidth)
}

func (c *Controller) clamp(idx float64) int {
	last := len(c.items) - 1
	switch {
	case math.IsNaN(idx) || idx < 0:
		return 0
	case idx > float64(last):
		return last
	default:
		return int(idx)
	}
}

// Next pages one card forward and reports whether the index changed.
func (c *Controller) Next() bool {
	return c.OnPageSettled(float64(c.index+1), 1)
}

// Prev pages one card back and reports whether the index changed.
func (c *Controller) Prev() bool {
	return c.OnPageSettled(float64(c.index-1), 1)
}

// CurrentItem returns the visible card, or false when the list is empty.
func (c *Controller) CurrentItem() (content.Item, bool) {
	if len(c.items) == 0 {
		return content.Item{}, false
	}
	return c.items[c.index], true
}

// Index returns the visible position; 0 for an empty list.
func (c *Controller) Index() int { return c.index }

// Len returns the number of cards.
func (c *Controller) Len() int { return len(c.items) }

// Items returns a copy of the card list.
func (c *Controller) Items() []content.Item {
	return append([]content.Item(nil), c.items...)
}
