package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#FFB4E2")
	peachColor     = lipgloss.Color("#FCCCA8")
	lavenderColor  = lipgloss.Color("#E2D3FF")
	whiteColor     = lipgloss.Color("#FFFFFF")
	mutedColor     = lipgloss.Color("244")
	dykBackground  = lipgloss.Color("#270B13")
	flashBackdrop  = lipgloss.Color("#081824")
	flashCardColor = lipgloss.Color("#1F4E79")
	sheetColor     = lipgloss.Color("#1B1230")

	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(mutedColor)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lavenderColor)
	taglineStyle       = lipgloss.NewStyle().Foreground(peachColor).Italic(true)
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lavenderColor).Padding(0, 1)
	keyStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(peachColor).Padding(0, 1)
	keyDescStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))

	headerTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(whiteColor)
	headerSubtitleStyle = lipgloss.NewStyle().Foreground(peachColor)
	headerBoxStyle      = lipgloss.NewStyle().Padding(0, 2)

	menuItemStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedColor).Padding(0, 2)
	menuItemActiveStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primaryColor).Padding(0, 2)
	menuTitleStyle      = lipgloss.NewStyle().Bold(true).Foreground(whiteColor)

	segmentActiveStyle   = lipgloss.NewStyle().Foreground(whiteColor)
	segmentInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	dykBadgeStyle     = lipgloss.NewStyle().Bold(true).Foreground(dykBackground).Background(peachColor).Padding(0, 1)
	causeEffectStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#9b8a8e")).Padding(0, 1).Align(lipgloss.Center)
	cardBodyStyle     = lipgloss.NewStyle().Foreground(whiteColor)
	citationStyle     = lipgloss.NewStyle().Foreground(peachColor).Underline(true)
	flashBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(flashCardColor).Padding(1, 2)
	flashNumberStyle  = lipgloss.NewStyle().Bold(true).Foreground(flashBackdrop).Background(whiteColor).Padding(0, 1)
	flashHeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(whiteColor)
	flashRuleStyle    = lipgloss.NewStyle().Foreground(peachColor)

	askBarStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(lavenderColor).Padding(0, 1)
	questionStyle  = lipgloss.NewStyle().Foreground(whiteColor)
	askButtonStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1a1a1a")).Background(lipgloss.Color("#FFCCB8")).Padding(0, 2)

	sheetStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primaryColor).Background(sheetColor).Padding(0, 1)
	sheetHandleStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	tinuCardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lavenderColor).Padding(0, 1).MarginRight(1)
	scriptBadgeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lavenderColor)
	tinuCardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(whiteColor)
	contextInfoStyle   = lipgloss.NewStyle().Foreground(whiteColor).Italic(true)
	chipStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#BBBBBB")).Padding(0, 1).MarginRight(1)
	inputBarStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(peachColor).Padding(0, 1)

	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(whiteColor).Background(dykBackground)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#120407"))
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		"████████╗  ██╗  ███╗   ██╗  ██╗   ██╗  ██████╗    █████╗   ██╗       ",
		"╚══██╔══╝  ██║  ████╗  ██║  ╚██╗ ██╔╝  ██╔══██╗  ██╔══██╗  ██║       ",
		"   ██║     ██║  ██╔██╗ ██║   ╚████╔╝   ██████╔╝  ███████║  ██║       ",
		"   ██║     ██║  ██║╚██╗██║    ╚██╔╝    ██╔═══╝   ██╔══██║  ██║       ",
		"   ██║     ██║  ██║ ╚████║     ██║     ██║       ██║  ██║  ███████╗  ",
		"   ╚═╝     ╚═╝  ╚═╝  ╚═══╝     ╚═╝     ╚═╝       ╚═╝  ╚═╝  ╚══════╝  ",
	}
)
