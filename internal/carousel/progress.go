package carousel

// Segment is one bar of the progress indicator.
type Segment struct {
	Position int
	Active   bool
}

// Render returns one segment per card, active iff its position is current.
func Render(total, current int) []Segment {
	if total <= 0 {
		return nil
	}
	segments := make([]Segment, total)
	for i := range segments {
		segments[i] = Segment{Position: i, Active: i == current}
	}
	return segments
}

// SegmentWidth splits available width across total segments separated by gap,
// after reserving gutter. Widths never drop below 1.
func SegmentWidth(available, gutter, gap, total int) int {
	if total <= 0 {
		return 0
	}
	width := (available - gutter - (total-1)*gap) / total
	if width < 1 {
		return 1
	}
	return width
}
