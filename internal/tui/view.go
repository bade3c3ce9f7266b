package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/tinypal/internal/carousel"
	"github.com/csheth/tinypal/internal/content"
	"github.com/csheth/tinypal/internal/overlay"
	"github.com/csheth/tinypal/internal/tinu"
)

func (m *model) View() string {
	switch m.stage {
	case stageHome:
		return m.viewHome()
	case stageLoading:
		return m.viewLoading()
	case stageCarousel:
		return m.viewCarousel()
	default:
		return ""
	}
}

func (m *model) viewHome() string {
	hero := lipgloss.JoinVertical(lipgloss.Left, renderLogo(), taglineStyle.Render(heroTagline))
	items := make([]string, 0, len(screens))
	for idx, s := range screens {
		style := menuItemStyle
		if idx == m.menuCursor {
			style = menuItemActiveStyle
		}
		body := menuTitleStyle.Render(fmt.Sprintf("%d. %s", idx+1, s.menuTitle)) + "\n" + helperStyle.Render(s.menuSubtext)
		items = append(items, style.Width(m.menuWidth()).Render(body))
	}
	menu := lipgloss.JoinVertical(lipgloss.Left, items...)
	return joinNonEmpty([]string{hero, menu, m.keyLegendView(homeHints)})
}

func (m *model) menuWidth() int {
	width := m.layout.contentWidth - 4
	if width > 60 {
		width = 60
	}
	return width
}

func (m *model) viewLoading() string {
	loading := helperStyle.Render(fmt.Sprintf("%s Loading...", m.spinner.View()))
	return joinNonEmpty([]string{m.headerView(), loading})
}

func (m *model) viewCarousel() string {
	parts := []string{m.headerView()}
	if bar := m.progressView(); bar != "" {
		parts = append(parts, bar)
	}
	item, ok := m.carousel.CurrentItem()
	switch {
	case ok && item.Kind == content.KindFlash:
		parts = append(parts, m.flashCardView(item))
	case ok:
		parts = append(parts, m.dykCardView(item))
	case m.errorMessage == "":
		parts = append(parts, helperStyle.Render("No cards to show yet."))
	}
	if ok && item.CanActivate() {
		parts = append(parts, m.askBarView())
	}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" && ok {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	parts = append(parts, m.statusView(), m.keyLegendView(carouselHints))
	base := joinNonEmpty(parts)
	if !m.overlay.IsOpen() {
		return base
	}
	lay := m.overlay.Layout(m.layout.windowHeight)
	return stackAbove(base, m.overlayView(lay), m.layout.windowHeight, lay.Height)
}

func (m *model) headerView() string {
	box := headerBoxStyle.Background(m.screen.background).Width(m.layout.contentWidth)
	title := headerTitleStyle.Render(m.screen.title)
	subtitle := headerSubtitleStyle.Render(m.screen.subtitle)
	return box.Render(title + "\n" + subtitle)
}

func (m *model) progressView() string {
	total := m.carousel.Len()
	segments := carousel.Render(total, m.carousel.Index())
	if len(segments) == 0 {
		return ""
	}
	width := carousel.SegmentWidth(m.layout.contentWidth, progressGutter, progressGap, total)
	bar := strings.Repeat("━", width)
	cells := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.Active {
			cells = append(cells, segmentActiveStyle.Render(bar))
		} else {
			cells = append(cells, segmentInactiveStyle.Render(bar))
		}
	}
	gap := strings.Repeat(" ", progressGap)
	return strings.Repeat(" ", progressGutter/2) + strings.Join(cells, gap)
}

func (m *model) dykCardView(item content.Item) string {
	width := m.layout.contentWidth
	parts := []string{dykBadgeStyle.Render("DID YOU KNOW")}
	if ce := item.CauseAndEffect; ce != nil {
		boxWidth := (width - 5) / 2
		cause := causeEffectStyle.Width(boxWidth).Render(wrap(ce.Cause, boxWidth-4))
		effect := causeEffectStyle.Width(boxWidth).Render(wrap(ce.Effect, boxWidth-4))
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Center, cause, " → ", effect))
	}
	if item.Heading != "" {
		parts = append(parts, flashHeadingStyle.Render(wrap(item.Heading, width)))
	}
	if item.Content != "" {
		parts = append(parts, cardBodyStyle.Render(wrap(item.Content, width)))
	}
	if c := item.Citation; c != nil && c.Label != "" {
		line := citationStyle.Render(c.Label)
		if c.URL != "" {
			line += " " + helperStyle.Render(c.URL)
		}
		parts = append(parts, line)
	}
	if item.ImageURL != "" {
		parts = append(parts, helperStyle.Render("Image: "+item.ImageURL))
	}
	return joinNonEmpty(parts)
}

func (m *model) flashCardView(item content.Item) string {
	width := m.layout.contentWidth - 6
	lines := []string{flashNumberStyle.Render(fmt.Sprintf("%d", m.carousel.Index()+1))}
	if item.Heading != "" {
		lines = append(lines, flashHeadingStyle.Render(wrap(item.Heading, width)))
	}
	lines = append(lines, flashRuleStyle.Render(strings.Repeat("─", 12)))
	if item.Content != "" {
		lines = append(lines, cardBodyStyle.Render(wrap(item.Content, width)))
	}
	if item.ImageURL != "" {
		lines = append(lines, helperStyle.Render("Image: "+item.ImageURL))
	}
	return flashBoxStyle.Width(m.layout.contentWidth).Render(strings.Join(lines, "\n\n"))
}

func (m *model) askBarView() string {
	question := questionStyle.Render(tinuQuestion)
	button := askButtonStyle.Render("[a] Ask Tinu")
	return askBarStyle.Width(m.layout.contentWidth).Render(question + "  " + button)
}

func (m *model) statusView() string {
	stats := []string{}
	if total := m.carousel.Len(); total > 0 {
		stats = append(stats, fmt.Sprintf("Card %d/%d", m.carousel.Index()+1, total))
	}
	if m.overlay.IsOpen() {
		stats = append(stats, fmt.Sprintf("Tinu %s", m.overlay.Phase()))
	}
	if badges := m.jobStatusBadges(); len(badges) > 0 {
		stats = append(stats, badges...)
	}
	if len(stats) == 0 {
		return ""
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) jobStatusBadges() []string {
	var badges []string
	for _, kind := range []jobKind{jobKindFetch, jobKindActivate} {
		if n := m.running[kind]; n > 0 {
			badges = append(badges, fmt.Sprintf("%s×%d", kind, n))
		}
	}
	return badges
}

func (m *model) overlayView(lay overlay.Layout) string {
	state := m.overlay.State()
	width := m.layout.panelWidth
	handle := sheetHandleStyle.Render(strings.Repeat("─", 8)) + "  " + helperStyle.Render("[esc] close")

	var body string
	switch state.Phase {
	case overlay.Loading:
		body = helperStyle.Render(fmt.Sprintf("%s Loading...", m.spinner.View()))
	case overlay.Failed:
		message := "Failed to load Tinu data. Please try again."
		if state.Err != nil {
			message = state.Err.Message()
		}
		body = errorStyle.Render(wrap("⚠️ "+message, width-6)) + "\n\n" + keyStyle.Render("r") + keyDescStyle.Render(" Retry")
	case overlay.Ready:
		body = m.viewport.View()
	}

	rows := []string{handle, body}
	if lay.ShowInput {
		rows = append(rows, inputBarStyle.Width(width-6).Render(m.input.View()))
	}
	if lay.ShowDismissKeyboard {
		rows = append(rows, helperStyle.Render("[esc] Dismiss keyboard"))
	}
	height := lay.Height - 2
	if height < 1 {
		height = 1
	}
	return sheetStyle.Width(width).Height(height).Render(strings.Join(rows, "\n"))
}

// readyContent renders the enrichment sections; empty sections render nothing.
func (m *model) readyContent(payload tinu.Payload, showCards bool) string {
	width := m.viewport.Width
	sections := []string{}
	if showCards && len(payload.Cards) > 0 {
		sections = append(sections, m.scriptCardsView(payload.Cards, width))
	}
	if info := strings.TrimSpace(payload.ContextInfo); info != "" {
		sections = append(sections, contextInfoStyle.Render(wrap(info, width)))
	}
	if len(payload.Chips) > 0 {
		label := strings.TrimSpace(payload.ContextLabel)
		if label == "" {
			label = defaultContextLabel
		}
		sections = append(sections, sectionHeaderStyle.Render(label)+"\n"+chipGridView(payload.Chips, width))
	}
	return joinNonEmpty(sections)
}

// boxFrame is the border plus right margin around script cards and chips.
const boxFrame = 3

func (m *model) scriptCardsView(cards []tinu.Card, width int) string {
	cardWidth := (width - 2*boxFrame) / 2
	stacked := cardWidth < 20
	if stacked {
		cardWidth = width - boxFrame
	}
	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		lines := []string{scriptBadgeStyle.Render("Script")}
		if card.Title != "" {
			lines = append(lines, tinuCardTitleStyle.Render(wrap(card.Title, cardWidth-4)))
		}
		if card.Content != "" {
			lines = append(lines, wrap(card.Content, cardWidth-4))
		}
		rendered = append(rendered, tinuCardStyle.Width(cardWidth).Render(strings.Join(lines, "\n")))
	}
	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// chipGridView lays chips out two per row.
func chipGridView(chips []tinu.Chip, width int) string {
	chipWidth := (width - 2*boxFrame) / 2
	rows := []string{}
	for i := 0; i < len(chips); i += 2 {
		end := i + 2
		if end > len(chips) {
			end = len(chips)
		}
		cells := []string{}
		for _, chip := range chips[i:end] {
			glyph := chip.Glyph
			if glyph == "" {
				glyph = tinu.ChipGlyph(chip.Icon)
			}
			cells = append(cells, chipStyle.Width(chipWidth).Render(glyph+" "+chip.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

type keyHint struct {
	Key         string
	Description string
}

var homeHints = []keyHint{
	{"↑/↓", "Choose"},
	{"enter", "Open"},
	{"q", "Quit"},
}

var carouselHints = []keyHint{
	{"←/→", "Page"},
	{"a", "Ask Tinu"},
	{"r", "Reload"},
	{"esc", "Home"},
}

func (m *model) keyLegendView(hints []keyHint) string {
	cells := make([]string, 0, len(hints))
	for _, hint := range hints {
		cells = append(cells, keyStyle.Render(hint.Key)+keyDescStyle.Render(" "+hint.Description+"  "))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

type logoCell byte

const (
	logoBlank logoCell = iota
	logoFace
	logoShadow
)

// logoMask classifies every cell of art with a drop shadow one row down and
// one column right. Face cells win over shadow cells.
func logoMask(art []string) [][]logoCell {
	if len(art) == 0 {
		return nil
	}
	rows := make([][]rune, len(art))
	cols := 0
	for i, line := range art {
		rows[i] = []rune(line)
		if n := len(rows[i]); n > cols {
			cols = n
		}
	}
	solid := func(y, x int) bool {
		return y >= 0 && y < len(rows) && x >= 0 && x < len(rows[y]) && rows[y][x] != ' '
	}
	mask := make([][]logoCell, len(rows)+1)
	for y := range mask {
		mask[y] = make([]logoCell, cols+1)
		for x := range mask[y] {
			switch {
			case solid(y, x):
				mask[y][x] = logoFace
			case solid(y-1, x-1):
				mask[y][x] = logoShadow
			}
		}
	}
	return mask
}

func renderLogo() string {
	mask := logoMask(logoArtLines)
	if mask == nil {
		return ""
	}
	art := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		art[i] = []rune(line)
	}
	lines := make([]string, len(mask))
	for y, row := range mask {
		var b strings.Builder
		for x, c := range row {
			switch c {
			case logoFace:
				b.WriteString(logoFaceStyle.Render(string(art[y][x])))
			case logoShadow:
				b.WriteString(logoShadowStyle.Render(string(art[y-1][x-1])))
			default:
				b.WriteByte(' ')
			}
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}
