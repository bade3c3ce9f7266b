package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/tinypal/internal/content"
)

type stage int

const (
	stageHome stage = iota
	stageLoading
	stageCarousel
)

const heroTagline = "Parenting Insights"

const (
	minCardWidth              = 40
	viewportHorizontalPadding = 4
	progressGutter            = 4
	progressGap               = 1
	tinuQuestion              = "What are considered distractions?"
	defaultContextLabel       = "Share more context of Arya"
	inputPlaceholder          = "Ask me anything..."
)

// screen describes one carousel destination reachable from the home menu.
type screen struct {
	kind        content.Kind
	menuTitle   string
	menuSubtext string
	title       string
	subtitle    string
	background  lipgloss.Color
}

var screens = []screen{
	{
		kind:        content.KindDYK,
		menuTitle:   "Did You Know",
		menuSubtext: "Learn parenting insights",
		title:       "UNLEARN OLD PATTERNS",
		subtitle:    "Distractions=No No!",
		background:  dykBackground,
	},
	{
		kind:        content.KindFlash,
		menuTitle:   "Flash Cards",
		menuSubtext: "Quick parenting tips",
		title:       "UNLEARN OLD PATTERNS",
		subtitle:    "No Distractions 101",
		background:  flashBackdrop,
	},
}

func screenFor(kind content.Kind) screen {
	for _, s := range screens {
		if s.kind == kind {
			return s
		}
	}
	return screens[0]
}

// keyboardMsg reports the input bar gaining or losing focus, the terminal
// stand-in for the on-screen keyboard appearing.
type keyboardMsg struct {
	visible bool
}
