package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveLayout(t *testing.T) {
	cases := []struct {
		name     string
		phase    Phase
		keyboard bool
		height   int
		want     Layout
	}{
		{name: "closed", phase: Closed, keyboard: true, height: 50, want: Layout{Mode: LayoutDefault}},
		{name: "loading default", phase: Loading, height: 50, want: Layout{Mode: LayoutDefault, Height: 32, ShowCards: true}},
		{name: "loading expanded", phase: Loading, keyboard: true, height: 50, want: Layout{Mode: LayoutExpanded, Height: 40, ShowDismissKeyboard: true}},
		{name: "ready default", phase: Ready, height: 50, want: Layout{Mode: LayoutDefault, Height: 32, ShowCards: true, ShowInput: true}},
		{name: "ready expanded", phase: Ready, keyboard: true, height: 50, want: Layout{Mode: LayoutExpanded, Height: 40, ShowDismissKeyboard: true, ShowInput: true}},
		{name: "failed", phase: Failed, height: 50, want: Layout{Mode: LayoutDefault, Height: 32, ShowCards: true}},
		{name: "tiny terminal", phase: Ready, height: 6, want: Layout{Mode: LayoutDefault, Height: 6, ShowCards: true, ShowInput: true}},
		{name: "unknown height", phase: Loading, height: 0, want: Layout{Mode: LayoutDefault, Height: minPanelHeight, ShowCards: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveLayout(tc.phase, tc.keyboard, tc.height))
		})
	}
}

func TestExpandedIsTaller(t *testing.T) {
	for height := 10; height <= 80; height += 7 {
		def := DeriveLayout(Loading, false, height)
		exp := DeriveLayout(Loading, true, height)
		assert.GreaterOrEqual(t, exp.Height, def.Height, "height %d", height)
	}
}
