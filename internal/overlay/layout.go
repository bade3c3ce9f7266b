package overlay

// LayoutMode is the panel height class.
type LayoutMode int

const (
	LayoutDefault LayoutMode = iota
	LayoutExpanded
)

func (m LayoutMode) String() string {
	if m == LayoutExpanded {
		return "expanded"
	}
	return "default"
}

const (
	defaultHeightFraction  = 0.64
	expandedHeightFraction = 0.80
	minPanelHeight         = 8
)

// Layout is the presentation derived from (phase, keyboard visible).
type Layout struct {
	Mode LayoutMode
	// Height is the panel height in rows; 0 when closed.
	Height int
	// ShowCards is false while typing so the input bar keeps its room.
	ShowCards bool
	// ShowDismissKeyboard offers a way back to the default layout.
	ShowDismissKeyboard bool
	// ShowInput is true once enrichment content is ready.
	ShowInput bool
}

// DeriveLayout is a pure function of its inputs.
func DeriveLayout(phase Phase, keyboardVisible bool, height int) Layout {
	if phase == Closed {
		return Layout{Mode: LayoutDefault}
	}
	mode := LayoutDefault
	fraction := defaultHeightFraction
	if keyboardVisible {
		mode = LayoutExpanded
		fraction = expandedHeightFraction
	}
	rows := int(float64(height) * fraction)
	if rows < minPanelHeight {
		rows = minPanelHeight
	}
	if height > 0 && rows > height {
		rows = height
	}
	return Layout{
		Mode:                mode,
		Height:              rows,
		ShowCards:           !keyboardVisible,
		ShowDismissKeyboard: keyboardVisible,
		ShowInput:           phase == Ready,
	}
}
