package muffuletta

import (
	"github.com/dpavese/muffuletta/pkg/muffuletta/internal"
)

// fillNavigation distributes the horizontal space left over after laying out
// the step markers into left and right padding around each marker, so the
// strip always spans exactly the available width.
//
// The leftover is split evenly across the 2n padding slots, ordered
// left0, right0, left1, right1, ...; any remainder is handed out one pixel
// per slot in that same order. Marker widths plus returned padding always sum
// to the available width. A strip with no markers gets no padding.
func fillNavigation(available int32, markerWidths []int32) []internal.Padding {
	n := len(markerWidths)
	if n == 0 {
		return nil
	}

	used := int32(0)
	for _, w := range markerWidths {
		used += w
	}

	remaining := available - used
	if remaining < 0 {
		remaining = 0
	}

	slots := int32(2 * n)
	base := remaining / slots
	leftover := remaining % slots

	paddings := make([]internal.Padding, n)
	for i := range paddings {
		paddings[i].Left = base
		paddings[i].Right = base

		// Slot order is left before right within each marker.
		if int32(2*i) < leftover {
			paddings[i].Left++
		}
		if int32(2*i+1) < leftover {
			paddings[i].Right++
		}
	}
	return paddings
}
