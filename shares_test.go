package gui_test

import (
	"math"
	"testing"

	"github.com/frameloop/gui"
)

func sharesFixture() ([]gui.NodeID, gui.Shares) {
	children := []gui.NodeID{gui.NewNodeID(), gui.NewNodeID(), gui.NewNodeID()}
	return children, make(gui.Shares, len(children))
}

func TestSharesDefaultToEvenSplit(t *testing.T) {
	children, shares := sharesFixture()

	sizes := shares.Split(children, 300)
	for i, s := range sizes {
		if s != 100 {
			t.Errorf("child %d got %v, want 100", i, s)
		}
	}
}

func TestSharesSplitProportional(t *testing.T) {
	children, shares := sharesFixture()
	shares.Set(children[0], 1)
	shares.Set(children[1], 2)
	shares.Set(children[2], 1)

	sizes := shares.Split(children, 400)
	if sizes[0] != 100 || sizes[1] != 200 || sizes[2] != 100 {
		t.Errorf("Split = %v, want [100 200 100]", sizes)
	}
}

func TestDragDividerConservesTotal(t *testing.T) {
	children, shares := sharesFixture()
	before := shares.Sum(children)

	shares.DragDivider(children, 0, 50, 300, 10)

	after := shares.Sum(children)
	if math.Abs(float64(after-before)) > 1e-4 {
		t.Errorf("total shares changed: %v -> %v", before, after)
	}
	if shares.Share(children[0]) <= shares.Share(children[1]) {
		t.Error("dragging right should grow the left child at its neighbor's expense")
	}
}

func TestDragDividerRespectsMinSize(t *testing.T) {
	children, shares := sharesFixture()

	// Drag far enough to flatten every right-hand child without a floor.
	shares.DragDivider(children, 0, 280, 300, 40)

	total := shares.Sum(children)
	minShare := 40 * total / 300
	for _, id := range children[1:] {
		if shares.Share(id) < minShare-1e-4 {
			t.Errorf("child squeezed below its minimum: %v < %v", shares.Share(id), minShare)
		}
	}
}

func TestDragDividerCascadesOutward(t *testing.T) {
	children, shares := sharesFixture()
	shares.Set(children[1], 0.2) // middle child has little to give

	shares.DragDivider(children, 0, 100, 300, 10)

	// The middle child bottoms out at its minimum and the remainder comes
	// from the child behind it.
	total := shares.Sum(children)
	minShare := 10 * total / 300
	if math.Abs(float64(shares.Share(children[1])-minShare)) > 1e-3 {
		t.Errorf("nearest child = %v, want pinned at min %v", shares.Share(children[1]), minShare)
	}
	if shares.Share(children[2]) >= 1 {
		t.Error("the further child should have given up weight too")
	}
}

func TestEqualizeAveragesNeighbors(t *testing.T) {
	children, shares := sharesFixture()
	shares.Set(children[0], 3)
	shares.Set(children[1], 1)

	shares.Equalize(children[0], children[1])

	if shares.Share(children[0]) != 2 || shares.Share(children[1]) != 2 {
		t.Errorf("Equalize = %v, %v, want 2, 2",
			shares.Share(children[0]), shares.Share(children[1]))
	}
}

func TestSharesRetainDropsStale(t *testing.T) {
	children, shares := sharesFixture()
	for _, id := range children {
		shares.Set(id, 1)
	}

	keep := children[0]
	shares.Retain(func(id gui.NodeID) bool { return id == keep })

	if len(shares) != 1 {
		t.Errorf("Retain left %d entries, want 1", len(shares))
	}
	if _, ok := shares[keep]; !ok {
		t.Error("Retain dropped the kept child")
	}
}

func TestSetClampsNonPositive(t *testing.T) {
	_, shares := sharesFixture()
	id := gui.NewNodeID()
	shares.Set(id, -5)
	if shares.Share(id) <= 0 {
		t.Error("a child's share must never reach zero")
	}
}
