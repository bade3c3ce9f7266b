package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Rows the overlay panel spends outside its scrollable body: border, handle
// line and the gap below it.
const panelChrome = 4

type pageLayout struct {
	windowWidth  int
	windowHeight int
	contentWidth int
	panelWidth   int
}

func newPageLayout() pageLayout {
	return pageLayout{
		contentWidth: 76,
		panelWidth:   78,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	inner := width - viewportHorizontalPadding
	if inner < minCardWidth {
		inner = minCardWidth
	}
	l.contentWidth = inner
	panel := width - 2
	if panel < minCardWidth {
		panel = minCardWidth
	}
	l.panelWidth = panel
}

// panelBodyHeight is the viewport height left inside a panel of the given
// total height once the input bar and dismiss hint have been placed.
func panelBodyHeight(panelHeight int, showInput, showDismiss bool) int {
	rows := panelHeight - panelChrome
	if showInput {
		rows -= 3
	}
	if showDismiss {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func wrap(text string, width int) string {
	if width < 10 {
		width = 10
	}
	return wordwrap.String(strings.TrimSpace(text), width)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

// stackAbove keeps the leading rows of base that fit above a panel of
// panelHeight rows, so the panel reads as a sheet covering the screen bottom.
func stackAbove(base, panel string, windowHeight, panelHeight int) string {
	if windowHeight <= 0 {
		return base + "\n" + panel
	}
	room := windowHeight - panelHeight
	if room < 0 {
		room = 0
	}
	lines := strings.Split(base, "\n")
	if len(lines) > room {
		lines = lines[:room]
	}
	if len(lines) == 0 {
		return panel
	}
	return strings.Join(lines, "\n") + "\n" + panel
}
