package carousel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRenderExactlyOneActive(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for current := 0; current < total; current++ {
			segments := Render(total, current)
			if len(segments) != total {
				t.Fatalf("Render(%d, %d) returned %d segments", total, current, len(segments))
			}
			active := 0
			for _, seg := range segments {
				if seg.Active {
					active++
					if seg.Position != current {
						t.Fatalf("Render(%d, %d) activated position %d", total, current, seg.Position)
					}
				}
			}
			if active != 1 {
				t.Fatalf("Render(%d, %d) has %d active segments", total, current, active)
			}
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	assert.Empty(t, Render(0, 0))
	assert.Empty(t, Render(-3, 0))
}

func TestRenderShape(t *testing.T) {
	want := []Segment{{0, false}, {1, true}, {2, false}}
	if diff := cmp.Diff(want, Render(3, 1)); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestSegmentWidth(t *testing.T) {
	// 390pt screen, 32pt gutter, 4pt gaps, as on the phone layout.
	assert.Equal(t, 86, SegmentWidth(390, 32, 4, 4))
	assert.Equal(t, 358, SegmentWidth(390, 32, 4, 1))
	assert.Equal(t, 0, SegmentWidth(390, 32, 4, 0))
	assert.Equal(t, 1, SegmentWidth(10, 4, 1, 20))
}
