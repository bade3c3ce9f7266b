package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/tinypal/internal/carousel"
	"github.com/csheth/tinypal/internal/content"
	"github.com/csheth/tinypal/internal/overlay"
	"github.com/csheth/tinypal/internal/tinu"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Fetcher content.Fetcher
	Tinu    tinu.Service
	Logger  *zap.Logger
	// StartScreen is "home", "dyk" or "flash". Empty means home.
	StartScreen string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.CharLimit = 280
	input.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(76, 10)
	vp.MouseWheelEnabled = true

	return &model{
		config:   config,
		logger:   logger,
		jobs:     newJobBus(logger),
		stage:    stageHome,
		screen:   screens[0],
		carousel: carousel.New(nil),
		overlay:  overlay.New(),
		input:    input,
		spinner:  spin,
		viewport: vp,
		layout:   newPageLayout(),
		running:  map[jobKind]int{},
	}
}

type model struct {
	config Config
	logger *zap.Logger
	jobs   *jobBus
	stage  stage

	menuCursor int
	screen     screen
	// token identifies the current screen mount; card results carrying an
	// older token are dropped.
	token int

	carousel *carousel.Controller
	overlay  *overlay.Controller

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	layout   pageLayout

	running      map[jobKind]int
	infoMessage  string
	errorMessage string
}

func (m *model) Init() tea.Cmd {
	switch content.Kind(m.config.StartScreen) {
	case content.KindDYK, content.KindFlash:
		return m.openScreen(content.Kind(m.config.StartScreen))
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.stage == stageLoading || m.overlay.Phase() == overlay.Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.overlay.Phase() == overlay.Ready {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case jobSignalMsg:
		m.running[msg.Snapshot.Kind]++
		return m, nil
	case jobResultEnvelope:
		if m.running[msg.Snapshot.Kind] > 0 {
			m.running[msg.Snapshot.Kind]--
		}
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case cardsResultMsg:
		return m.handleCards(msg)
	case activationResultMsg:
		return m.handleActivation(msg)
	case keyboardMsg:
		m.setKeyboard(msg.visible)
		return m, nil
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.input.Width = m.layout.panelWidth - 10
		m.relayoutOverlay()
		return m, nil
	}
	return m, nil
}

func (m *model) handleCards(msg cardsResultMsg) (tea.Model, tea.Cmd) {
	if msg.token != m.token || m.stage != stageLoading {
		m.logger.Debug("discarding stale card result", zap.Int("token", msg.token), zap.Int("current", m.token))
		return m, nil
	}
	m.stage = stageCarousel
	if msg.err != nil {
		m.logger.Error("card fetch failed", zap.String("screen", string(msg.kind)), zap.Error(msg.err))
		m.carousel.Initialize(nil)
		m.errorMessage = "Failed to load cards. Press r to reload."
		m.infoMessage = ""
		return m, nil
	}
	m.carousel.Initialize(msg.items)
	m.errorMessage = ""
	if m.carousel.Len() == 0 {
		m.infoMessage = "No cards to show yet."
	} else {
		m.infoMessage = ""
	}
	m.logger.Info("cards loaded", zap.String("screen", string(msg.kind)), zap.Int("count", m.carousel.Len()))
	return m, nil
}

func (m *model) handleActivation(msg activationResultMsg) (tea.Model, tea.Cmd) {
	if !m.overlay.Resolve(msg.ticket, msg.result) {
		m.logger.Debug("discarding stale activation",
			zap.Uint64("cycle", msg.ticket.Cycle),
			zap.Uint64("current", m.overlay.State().Cycle),
		)
		return m, nil
	}
	if msg.result.Err != nil {
		m.logger.Warn("tinu activation failed",
			zap.String("kind", msg.result.Err.Kind.String()),
			zap.Int("status", msg.result.Err.Status),
			zap.Error(msg.result.Err.Cause),
		)
	} else {
		m.logger.Info("tinu activation ready",
			zap.String("topic", msg.ticket.Topic),
			zap.Int("cards", len(msg.result.Payload.Cards)),
			zap.Int("chips", len(msg.result.Payload.Chips)),
		)
	}
	m.setKeyboard(m.overlay.State().KeyboardVisible)
	m.viewport.GotoTop()
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageHome:
		return m.handleHomeKey(key)
	case stageLoading:
		switch key.String() {
		case "esc", "backspace":
			m.goHome()
		case "q":
			return m, tea.Quit
		}
		return m, nil
	default:
		if m.overlay.IsOpen() {
			return m.handleOverlayKey(key)
		}
		return m.handleCarouselKey(key)
	}
}

func (m *model) handleHomeKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(screens)-1 {
			m.menuCursor++
		}
	case "1":
		m.menuCursor = 0
		return m, m.openScreen(screens[0].kind)
	case "2":
		m.menuCursor = 1
		return m, m.openScreen(screens[1].kind)
	case "enter":
		return m, m.openScreen(screens[m.menuCursor].kind)
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) handleCarouselKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "right", "l":
		m.settlePage(1)
	case "left", "h":
		m.settlePage(-1)
	case "a", "enter":
		return m, m.askTinu()
	case "r":
		return m, m.openScreen(m.screen.kind)
	case "esc", "backspace":
		m.goHome()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) handleOverlayKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.overlay.State()
	if m.input.Focused() {
		switch key.Type {
		case tea.KeyEsc, tea.KeyTab:
			return m.Update(keyboardMsg{visible: false})
		case tea.KeyEnter:
			m.submitInput()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		return m, cmd
	}
	switch key.String() {
	case "esc":
		if state.KeyboardVisible {
			return m.Update(keyboardMsg{visible: false})
		}
		m.closeOverlay()
	case "q":
		m.closeOverlay()
	case "tab", "i":
		return m.Update(keyboardMsg{visible: !state.KeyboardVisible})
	case "r":
		if ticket, ok := m.overlay.Retry(); ok {
			m.relayoutOverlay()
			return m, m.startActivation(ticket)
		}
		m.relayoutOverlay()
	default:
		if state.Phase == overlay.Ready {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(key)
			return m, cmd
		}
	}
	return m, nil
}

// settlePage moves one page in direction by reporting the offset a finished
// swipe would have produced.
func (m *model) settlePage(direction int) {
	width := float64(m.layout.contentWidth)
	offset := float64(m.carousel.Index()+direction) * width
	if m.carousel.OnPageSettled(offset, width) {
		m.infoMessage = ""
	}
}

func (m *model) openScreen(kind content.Kind) tea.Cmd {
	m.token++
	m.screen = screenFor(kind)
	m.carousel.Initialize(nil)
	m.closeOverlay()
	m.errorMessage = ""
	m.infoMessage = ""
	if m.config.Fetcher == nil {
		m.stage = stageCarousel
		m.errorMessage = "No content source configured."
		return nil
	}
	m.stage = stageLoading
	return tea.Batch(
		m.jobs.Start(jobKindFetch, fetchCardsJob(m.config.Fetcher, m.token, kind)),
		m.spinner.Tick,
	)
}

func (m *model) goHome() {
	m.token++
	m.closeOverlay()
	m.carousel.Initialize(nil)
	m.stage = stageHome
	m.errorMessage = ""
	m.infoMessage = ""
}

func (m *model) askTinu() tea.Cmd {
	item, ok := m.carousel.CurrentItem()
	if !ok {
		m.infoMessage = "No card to ask about."
		return nil
	}
	if !item.CanActivate() {
		m.infoMessage = "Tinu isn't available for this card."
		return nil
	}
	ticket, ok := m.overlay.Open(item.Activation.Context, item.Activation.Topic)
	m.relayoutOverlay()
	if !ok {
		if state := m.overlay.State(); state.Err != nil {
			m.logger.Warn("tinu activation rejected", zap.String("kind", state.Err.Kind.String()), zap.String("card", item.ID))
		}
		return nil
	}
	return m.startActivation(ticket)
}

func (m *model) startActivation(ticket overlay.Ticket) tea.Cmd {
	if m.config.Tinu == nil {
		m.overlay.Resolve(ticket, tinu.Failed(&tinu.Failure{Kind: tinu.ErrUnknown}))
		m.relayoutOverlay()
		return nil
	}
	m.logger.Info("tinu activation requested",
		zap.String("context", ticket.Context),
		zap.String("topic", ticket.Topic),
		zap.Uint64("cycle", ticket.Cycle),
	)
	return tea.Batch(m.jobs.Start(jobKindActivate, activateJob(m.config.Tinu, ticket)), m.spinner.Tick)
}

func (m *model) closeOverlay() {
	m.overlay.Close()
	m.setKeyboard(false)
}

// setKeyboard toggles the overlay keyboard flag; the input bar only takes
// focus when it is on screen.
func (m *model) setKeyboard(visible bool) {
	m.overlay.SetKeyboardVisible(visible)
	if visible && m.overlay.Phase() == overlay.Ready {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.relayoutOverlay()
}

func (m *model) submitInput() {
	value := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if value == "" {
		return
	}
	m.logger.Info("tinu input submitted",
		zap.String("topic", m.overlay.State().Topic),
		zap.Int("length", len(value)),
	)
	m.infoMessage = "Message noted."
}

// relayoutOverlay resizes the overlay body to the current layout and refreshes
// its content.
func (m *model) relayoutOverlay() {
	state := m.overlay.State()
	lay := overlay.DeriveLayout(state.Phase, state.KeyboardVisible, m.layout.windowHeight)
	m.viewport.Width = m.layout.panelWidth - 4
	m.viewport.Height = panelBodyHeight(lay.Height, lay.ShowInput, lay.ShowDismissKeyboard)
	if state.Phase == overlay.Ready {
		m.viewport.SetContent(m.readyContent(state.Payload, lay.ShowCards))
	} else {
		m.viewport.SetContent("")
	}
}
