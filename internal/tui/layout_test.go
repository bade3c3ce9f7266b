package tui

import (
	"strings"
	"testing"
)

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name         string
		width        int
		height       int
		contentWidth int
		panelWidth   int
	}{
		{name: "narrow", width: 30, height: 24, contentWidth: minCardWidth, panelWidth: minCardWidth},
		{name: "standard", width: 80, height: 24, contentWidth: 76, panelWidth: 78},
		{name: "wide", width: 200, height: 40, contentWidth: 196, panelWidth: 198},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height)
			if layout.contentWidth != tc.contentWidth {
				t.Fatalf("content width mismatch: got %d want %d", layout.contentWidth, tc.contentWidth)
			}
			if layout.panelWidth != tc.panelWidth {
				t.Fatalf("panel width mismatch: got %d want %d", layout.panelWidth, tc.panelWidth)
			}
			if layout.windowHeight != tc.height {
				t.Fatalf("window height mismatch: got %d want %d", layout.windowHeight, tc.height)
			}
		})
	}
}

func TestPanelBodyHeight(t *testing.T) {
	if got := panelBodyHeight(20, false, false); got != 16 {
		t.Fatalf("bare panel: got %d", got)
	}
	if got := panelBodyHeight(20, true, true); got != 12 {
		t.Fatalf("input and dismiss hint: got %d", got)
	}
	if got := panelBodyHeight(3, true, true); got != 1 {
		t.Fatalf("body height must stay positive, got %d", got)
	}
}

func TestStackAboveKeepsPanelVisible(t *testing.T) {
	base := strings.Join([]string{"a", "b", "c", "d", "e"}, "\n")
	got := stackAbove(base, "PANEL", 4, 2)
	if got != "a\nb\nPANEL" {
		t.Fatalf("unexpected stack: %q", got)
	}
	if got := stackAbove(base, "PANEL", 0, 2); !strings.HasSuffix(got, "e\nPANEL") {
		t.Fatalf("unknown height should keep the full base, got %q", got)
	}
	if got := stackAbove(base, "PANEL", 2, 5); got != "PANEL" {
		t.Fatalf("oversized panel should cover everything, got %q", got)
	}
}

func TestJoinNonEmptySkipsBlankParts(t *testing.T) {
	if got := joinNonEmpty([]string{"a", "  ", "", "b"}); got != "a\n\nb" {
		t.Fatalf("unexpected join: %q", got)
	}
}

func TestLogoMaskCastsShadow(t *testing.T) {
	mask := logoMask([]string{"ab", " c"})
	want := []string{
		"FF ",
		" FS",
		"  S",
	}
	if len(mask) != len(want) {
		t.Fatalf("mask rows mismatch: got %d want %d", len(mask), len(want))
	}
	for y, row := range mask {
		var b strings.Builder
		for _, c := range row {
			switch c {
			case logoFace:
				b.WriteByte('F')
			case logoShadow:
				b.WriteByte('S')
			default:
				b.WriteByte(' ')
			}
		}
		if got := b.String(); got != want[y] {
			t.Fatalf("row %d mismatch: got %q want %q", y, got, want[y])
		}
	}
	if logoMask(nil) != nil {
		t.Fatalf("expected nil mask for empty art")
	}
}

func TestRenderLogoKeepsArtText(t *testing.T) {
	logo := renderLogo()
	if !strings.Contains(logo, "█") {
		t.Fatalf("logo missing art glyphs:\n%s", logo)
	}
	if got := strings.Count(logo, "\n") + 1; got < len(logoArtLines)+1 {
		t.Fatalf("logo rows mismatch: got %d want at least %d", got, len(logoArtLines)+1)
	}
}
