package gui_test

import (
	"testing"

	"github.com/frameloop/gui"
)

func TestDockGCRemovesUnreachable(t *testing.T) {
	d := gui.NewDock[string]()
	a := d.AddLeaf("a")
	b := d.AddLeaf("b")
	d.Root = d.AddHorizontal(a, b)
	orphan := d.AddLeaf("orphan")

	d.GC(nil)

	if d.Get(orphan) != nil {
		t.Error("unreachable leaf should be swept")
	}
	if d.Get(a) == nil || d.Get(b) == nil {
		t.Error("reachable leaves must survive GC")
	}
}

func TestDockGCRetainVeto(t *testing.T) {
	d := gui.NewDock[string]()
	d.Root = d.AddLeaf("root")
	closed := d.AddLeaf("closed-but-kept")

	d.GC(func(pane string) bool { return pane == "closed-but-kept" })

	if d.Get(closed) == nil {
		t.Error("retained leaf should survive the sweep for later reopening")
	}

	d.GC(nil)
	if d.Get(closed) != nil {
		t.Error("without the veto the orphan should be swept")
	}
}

func TestDockGCBreaksCycles(t *testing.T) {
	d := gui.NewDock[string]()
	a := d.AddHorizontal()
	b := d.AddHorizontal()
	d.Get(a).Children = append(d.Get(a).Children, b)
	d.Get(b).Children = append(d.Get(b).Children, a)
	d.Root = a

	// Must terminate and leave a valid tree: the back edge is dropped.
	d.GC(nil)

	if got := len(d.Get(b).Children); got != 0 {
		t.Errorf("cycle edge not dropped, b has %d children", got)
	}
	if d.Get(a) == nil || d.Get(b) == nil {
		t.Error("nodes on the cycle are still reachable and must survive")
	}
}

func TestDockSimplifyCollapsesDegenerate(t *testing.T) {
	d := gui.NewDock[string]()
	leaf1 := d.AddLeaf("one")
	leaf2 := d.AddLeaf("two")
	wrapper := d.AddVertical(leaf1) // single child
	empty := d.AddVertical()
	d.Root = d.AddHorizontal(wrapper, leaf2, empty)

	d.Simplify()

	root := d.Get(d.Root)
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2 (empty container removed)", len(root.Children))
	}
	if root.Children[0] != leaf1 {
		t.Error("single-child container should be replaced by its child")
	}
	if d.Get(wrapper) != nil || d.Get(empty) != nil {
		t.Error("degenerate containers should be deleted")
	}
}

func TestDockSimplifyLeavesRootAlone(t *testing.T) {
	d := gui.NewDock[string]()
	leaf := d.AddLeaf("only")
	d.Root = d.AddHorizontal(leaf)

	d.Simplify()

	if n := d.Get(d.Root); n == nil || !n.IsContainer() {
		t.Error("a single-child root container must not collapse")
	}
}

func TestDockInsertWrapsKeepingParentID(t *testing.T) {
	d := gui.NewDock[string]()
	target := d.AddLeaf("target")
	d.Root = target
	incoming := d.AddLeaf("incoming")

	d.Insert(gui.InsertionPoint{
		Parent: target,
		Kind:   gui.InsertHorizontal,
		Index:  1,
	}, incoming)

	// The target's slot becomes a split; its old contents moved to a new
	// ID, so the root reference stays valid.
	n := d.Get(target)
	if n.Kind != gui.NodeHorizontal {
		t.Fatalf("wrapped node kind = %v, want horizontal", n.Kind)
	}
	if len(n.Children) != 2 || n.Children[1] != incoming {
		t.Fatalf("children = %v, want [moved-leaf incoming]", n.Children)
	}
	moved := d.Get(n.Children[0])
	if moved == nil || moved.Kind != gui.NodeLeaf || moved.Pane != "target" {
		t.Error("original pane should survive at a fresh ID")
	}
}

func TestDockInsertIntoMatchingContainer(t *testing.T) {
	d := gui.NewDock[string]()
	a := d.AddLeaf("a")
	b := d.AddLeaf("b")
	split := d.AddHorizontal(a, b)
	d.Root = split
	c := d.AddLeaf("c")

	d.Insert(gui.InsertionPoint{Parent: split, Kind: gui.InsertHorizontal, Index: 1}, c)

	n := d.Get(split)
	if len(n.Children) != 3 || n.Children[1] != c {
		t.Errorf("children = %v, want c slotted in the middle", n.Children)
	}
}

func TestDockMoveIntoOwnSubtreeRefused(t *testing.T) {
	d := gui.NewDock[string]()
	a := d.AddLeaf("a")
	b := d.AddLeaf("b")
	inner := d.AddHorizontal(a, b)
	other := d.AddLeaf("other")
	d.Root = d.AddHorizontal(inner, other)

	d.MoveNode(inner, gui.InsertionPoint{Parent: a, Kind: gui.InsertTabs, Index: 0})

	// Refused: the tree is unchanged.
	root := d.Get(d.Root)
	if len(root.Children) != 2 || root.Children[0] != inner {
		t.Error("moving a node into its own subtree must be refused")
	}
}

func TestDockTabsActiveFollowsRemoval(t *testing.T) {
	d := gui.NewDock[string]()
	a := d.AddLeaf("a")
	b := d.AddLeaf("b")
	tabs := d.AddTabs(a, b)
	d.Root = tabs

	if d.Get(tabs).Active != a {
		t.Fatal("first tab should start active")
	}

	d.Detach(a)
	if d.Get(tabs).Active != b {
		t.Error("detaching the active tab should activate a neighbor")
	}
}

func TestDockLayoutSplitsByShares(t *testing.T) {
	d := gui.NewDock[string]()
	left := d.AddLeaf("left")
	right := d.AddLeaf("right")
	d.Root = d.AddHorizontal(left, right)
	d.Get(d.Root).Shares.Set(left, 1)
	d.Get(d.Root).Shares.Set(right, 2)

	// 304 wide minus the 4pt divider gap leaves 300 to split 1:2.
	d.Layout(gui.Rect{X: 0, Y: 0, W: 304, H: 100}, 0)

	lr, _ := d.Rect(left)
	rr, _ := d.Rect(right)
	if lr.W != 100 {
		t.Errorf("left width = %v, want 100", lr.W)
	}
	if rr.W != 200 || rr.X != 104 {
		t.Errorf("right rect = %+v, want X=104 W=200", rr)
	}
}

func TestDockFindDropZoneEdgeSplitsLeaf(t *testing.T) {
	d := gui.NewDock[string]()
	a := d.AddLeaf("a")
	b := d.AddLeaf("b")
	d.Root = d.AddHorizontal(a, b)
	d.Layout(gui.Rect{X: 0, Y: 0, W: 204, H: 100}, 0)

	// Pointer deep in the left edge band of pane a while dragging b.
	zone, ok := d.FindDropZone(gui.Vec2{X: 5, Y: 50}, b)
	if !ok {
		t.Fatal("expected a drop zone under the pointer")
	}
	if zone.At.Parent != a || zone.At.Kind != gui.InsertHorizontal || zone.At.Index != 0 {
		t.Errorf("drop zone = %+v, want horizontal insert before pane a", zone.At)
	}
}

func TestDockFindDropZoneCenterStacksTabs(t *testing.T) {
	d := gui.NewDock[string]()
	a := d.AddLeaf("a")
	b := d.AddLeaf("b")
	d.Root = d.AddHorizontal(a, b)
	d.Layout(gui.Rect{X: 0, Y: 0, W: 204, H: 100}, 0)

	ar, _ := d.Rect(a)
	zone, ok := d.FindDropZone(ar.Center(), b)
	if !ok {
		t.Fatal("expected a drop zone at the pane center")
	}
	if zone.At.Kind != gui.InsertTabs || zone.At.Parent != a {
		t.Errorf("center drop should stack as tabs on a, got %+v", zone.At)
	}
}
