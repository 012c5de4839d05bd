package muffuletta

import (
	"testing"

	"github.com/dpavese/muffuletta/pkg/muffuletta/internal"
)

func paddedWidth(widths []int32, paddings []internal.Padding) int32 {
	total := int32(0)
	for i, w := range widths {
		total += w + paddings[i].Horizontal()
	}
	return total
}

func TestFillNavigationSpansExactly(t *testing.T) {
	cases := []struct {
		name      string
		available int32
		widths    []int32
	}{
		{"even split", 600, []int32{100, 100, 100}},
		{"remainder", 607, []int32{100, 100, 100}},
		{"single marker", 333, []int32{50}},
		{"tight fit", 300, []int32{100, 100, 100}},
		{"uneven markers", 1280, []int32{90, 140, 75, 120}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			paddings := fillNavigation(tc.available, tc.widths)
			if len(paddings) != len(tc.widths) {
				t.Fatalf("got %d paddings, want %d", len(paddings), len(tc.widths))
			}
			if got := paddedWidth(tc.widths, paddings); got != tc.available {
				t.Errorf("padded width = %d, want %d", got, tc.available)
			}
		})
	}
}

func TestFillNavigationRemainderOrder(t *testing.T) {
	// 2 markers, 4 slots: 11 leftover pixels = 2 per slot plus 3 extras,
	// handed to left0, right0, left1 in that order.
	paddings := fillNavigation(211, []int32{100, 100})

	want := []internal.Padding{
		{Left: 3, Right: 3},
		{Left: 3, Right: 2},
	}
	for i, p := range paddings {
		if p.Left != want[i].Left || p.Right != want[i].Right {
			t.Errorf("padding[%d] = {Left: %d, Right: %d}, want {Left: %d, Right: %d}",
				i, p.Left, p.Right, want[i].Left, want[i].Right)
		}
	}
}

func TestFillNavigationOverflowClamped(t *testing.T) {
	// Markers wider than the strip get zero padding rather than negative.
	paddings := fillNavigation(150, []int32{100, 100})
	for i, p := range paddings {
		if p.Left != 0 || p.Right != 0 {
			t.Errorf("padding[%d] = {Left: %d, Right: %d}, want zero", i, p.Left, p.Right)
		}
	}
}

func TestFillNavigationEmpty(t *testing.T) {
	if paddings := fillNavigation(640, nil); paddings != nil {
		t.Errorf("expected nil paddings for empty strip, got %v", paddings)
	}
}
