package viz

import "github.com/san-kum/lorenz/internal/dynamo"

// Segment is one colored line of a frame, in view-plane coordinates.
type Segment struct {
	A, B  dynamo.Point2
	Index int
	Age   float64
	Shade Shade
}

// Age is the normalized position of slot j relative to the head in a ring of
// the given capacity. The slot right after the head (the oldest point) gets
// 1/capacity and the slot right before it gets (capacity-1)/capacity.
func Age(j, head, capacity int) float64 {
	if j > head {
		return float64(j-head) / float64(capacity)
	}
	return float64(capacity-(head-j)) / float64(capacity)
}

// Assemble connects each projected point to its successor in index order,
// wrapping at the end of the ring. Segments with an invalid endpoint are
// skipped, as is the seam from the head to the oldest point. Colors come from
// cm, whose running maximum is updated as a side effect.
func Assemble(proj []Projected, head int, cm *ColorMapper) []Segment {
	n := len(proj)
	segs := make([]Segment, 0, n)
	for j := 0; j < n; j++ {
		if !proj[j].Valid {
			continue
		}
		next := (j + 1) % n
		if !proj[next].Valid {
			continue
		}
		if j == head {
			continue
		}
		age := Age(j, head, n)
		a, b := proj[j].P, proj[next].P
		shade, ok := cm.SegmentColor(a, b, age)
		if !ok {
			continue
		}
		segs = append(segs, Segment{A: a, B: b, Index: j, Age: age, Shade: shade})
	}
	return segs
}
