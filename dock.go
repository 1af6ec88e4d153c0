package gui

import (
	"fmt"
	"math"
	"math/rand"
)

// NodeID identifies one node in a dock tree. IDs are random 128-bit values
// so trees merged from different sessions (or deserialized from storage)
// never collide.
type NodeID struct {
	Hi, Lo uint64
}

// NewNodeID returns a fresh random node ID.
func NewNodeID() NodeID {
	return NodeID{Hi: rand.Uint64(), Lo: rand.Uint64()}
}

// IsZero returns true for the zero ID, which never names a real node.
func (id NodeID) IsZero() bool {
	return id == NodeID{}
}

// String renders a short hex form for logs.
func (id NodeID) String() string {
	return fmt.Sprintf("%08x", uint32(id.Lo))
}

// NodeKind discriminates the node variants of a dock tree.
type NodeKind int

const (
	NodeLeaf       NodeKind = iota // Hosts a pane
	NodeTabs                       // One visible child at a time
	NodeHorizontal                 // Children side by side
	NodeVertical                   // Children stacked
	NodeGrid                       // Children in equal cells
)

func (k NodeKind) String() string {
	switch k {
	case NodeLeaf:
		return "leaf"
	case NodeTabs:
		return "tabs"
	case NodeHorizontal:
		return "horizontal"
	case NodeVertical:
		return "vertical"
	case NodeGrid:
		return "grid"
	}
	return "?"
}

// Node is one dock tree node: either a leaf carrying a pane, or a
// container of child nodes.
type Node[P any] struct {
	Kind NodeKind

	// Pane is the payload of a leaf node.
	Pane P

	// Children, in order, for container nodes.
	Children []NodeID

	// Shares weights the children of linear containers.
	Shares Shares

	// Active is the visible child of a tabs container.
	Active NodeID
}

// IsContainer returns true for non-leaf nodes.
func (n *Node[P]) IsContainer() bool {
	return n.Kind != NodeLeaf
}

// childIndex returns the position of child in this container, or -1.
func (n *Node[P]) childIndex(child NodeID) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Dock is a tree of splits and tab groups over leaf panes. Nodes live in a
// flat arena keyed by ID; the tree structure is the Children lists. There
// are no parent back-references: parents are found by scanning, which
// keeps every mutation trivially consistent.
//
// P is the pane payload type, typically a small struct or an identifier
// the application resolves to its own state.
type Dock[P any] struct {
	Root  NodeID
	Nodes map[NodeID]*Node[P]

	// Gap is the divider thickness between children, in points.
	Gap float32

	// MinSize is the smallest extent any child may be resized to.
	MinSize float32

	// rects holds this frame's solved rect per node.
	rects map[NodeID]Rect

	// Transient interaction state, owned by the UI pass (dock_ui.go).
	resize  dockResizeState
	dragged NodeID
}

type dockResizeState struct {
	active bool
	parent NodeID
	index  int // Divider between Children[index] and Children[index+1]
	lastX  float32
	lastY  float32
}

// NewDock returns an empty dock. Add a root with AddLeaf or the container
// constructors and assign it to Root.
func NewDock[P any]() *Dock[P] {
	return &Dock[P]{
		Nodes:   make(map[NodeID]*Node[P], 16),
		Gap:     4,
		MinSize: 48,
		rects:   make(map[NodeID]Rect, 16),
	}
}

// AddLeaf adds a leaf node carrying the given pane and returns its ID.
func (d *Dock[P]) AddLeaf(pane P) NodeID {
	id := NewNodeID()
	d.Nodes[id] = &Node[P]{Kind: NodeLeaf, Pane: pane}
	return id
}

// AddTabs adds a tabs container. The first child starts active.
func (d *Dock[P]) AddTabs(children ...NodeID) NodeID {
	id := d.addContainer(NodeTabs, children)
	if len(children) > 0 {
		d.Nodes[id].Active = children[0]
	}
	return id
}

// AddHorizontal adds a left-to-right split container.
func (d *Dock[P]) AddHorizontal(children ...NodeID) NodeID {
	return d.addContainer(NodeHorizontal, children)
}

// AddVertical adds a top-to-bottom split container.
func (d *Dock[P]) AddVertical(children ...NodeID) NodeID {
	return d.addContainer(NodeVertical, children)
}

// AddGrid adds an equal-cell grid container.
func (d *Dock[P]) AddGrid(children ...NodeID) NodeID {
	return d.addContainer(NodeGrid, children)
}

func (d *Dock[P]) addContainer(kind NodeKind, children []NodeID) NodeID {
	id := NewNodeID()
	d.Nodes[id] = &Node[P]{
		Kind:     kind,
		Children: append([]NodeID(nil), children...),
		Shares:   make(Shares, len(children)),
	}
	return id
}

// Get returns the node for an ID, or nil.
func (d *Dock[P]) Get(id NodeID) *Node[P] {
	return d.Nodes[id]
}

// Rect returns the node's solved rect from the last Layout call.
func (d *Dock[P]) Rect(id NodeID) (Rect, bool) {
	r, ok := d.rects[id]
	return r, ok
}

// ParentOf finds the container holding id and id's index within it.
// Linear scan over the arena; dock trees are small.
func (d *Dock[P]) ParentOf(id NodeID) (parent NodeID, index int, ok bool) {
	for pid, n := range d.Nodes {
		if !n.IsContainer() {
			continue
		}
		if i := n.childIndex(id); i >= 0 {
			return pid, i, true
		}
	}
	return NodeID{}, -1, false
}

// Contains returns true if descendant is id or lives in id's subtree.
func (d *Dock[P]) Contains(id, descendant NodeID) bool {
	if id == descendant {
		return true
	}
	n := d.Nodes[id]
	if n == nil || !n.IsContainer() {
		return false
	}
	for _, c := range n.Children {
		if d.Contains(c, descendant) {
			return true
		}
	}
	return false
}

// Detach removes id from its parent's child list, leaving id and its
// subtree in the arena for reinsertion (or for the next GC to sweep).
// Returns false if id has no parent.
func (d *Dock[P]) Detach(id NodeID) bool {
	pid, i, ok := d.ParentOf(id)
	if !ok {
		return false
	}
	p := d.Nodes[pid]
	p.Children = append(p.Children[:i], p.Children[i+1:]...)
	delete(p.Shares, id)
	if p.Kind == NodeTabs && p.Active == id {
		p.Active = NodeID{}
		if len(p.Children) > 0 {
			p.Active = p.Children[min(i, len(p.Children)-1)]
		}
	}
	return true
}

// InsertKind says which container shape an insertion wants.
type InsertKind int

const (
	InsertTabs InsertKind = iota
	InsertHorizontal
	InsertVertical
)

func (k InsertKind) nodeKind() NodeKind {
	switch k {
	case InsertHorizontal:
		return NodeHorizontal
	case InsertVertical:
		return NodeVertical
	}
	return NodeTabs
}

// InsertionPoint names where a node should be inserted: into Parent's
// child list at Index, with Parent reshaped to Kind if it isn't already.
type InsertionPoint struct {
	Parent NodeID
	Kind   InsertKind
	Index  int
}

// Insert places child at the insertion point. If the parent is already a
// container of the wanted kind the child slots into its list; otherwise
// the parent node is wrapped: its contents move to a fresh ID and the
// parent's slot becomes a new container holding both. Wrapping keeps the
// parent's own ID stable, so grandparents never need fixing up.
func (d *Dock[P]) Insert(at InsertionPoint, child NodeID) {
	p := d.Nodes[at.Parent]
	if p == nil {
		guiLogger.Warn("dock insert into missing node", "parent", at.Parent)
		return
	}

	if p.IsContainer() && p.Kind == at.Kind.nodeKind() {
		i := at.Index
		if i < 0 {
			i = 0
		}
		if i > len(p.Children) {
			i = len(p.Children)
		}
		p.Children = append(p.Children, NodeID{})
		copy(p.Children[i+1:], p.Children[i:])
		p.Children[i] = child
		if p.Shares == nil {
			p.Shares = make(Shares, len(p.Children))
		}
		if p.Kind == NodeTabs {
			p.Active = child
		}
		return
	}

	// Wrap: the existing node moves to a fresh ID and the slot becomes a
	// container of the wanted kind.
	innerID := NewNodeID()
	inner := *p
	d.Nodes[innerID] = &inner

	children := []NodeID{innerID, child}
	if at.Index <= 0 {
		children = []NodeID{child, innerID}
	}
	wrapper := &Node[P]{
		Kind:     at.Kind.nodeKind(),
		Children: children,
		Shares:   make(Shares, 2),
	}
	if wrapper.Kind == NodeTabs {
		wrapper.Active = child
	}
	d.Nodes[at.Parent] = wrapper
}

// MoveNode detaches id and reinserts it at the insertion point. Moving a
// node into its own subtree is refused.
func (d *Dock[P]) MoveNode(id NodeID, at InsertionPoint) {
	if d.Contains(id, at.Parent) {
		guiLogger.Warn("dock move into own subtree refused", "node", id)
		return
	}
	pid, i, hadParent := d.ParentOf(id)
	if hadParent && pid == at.Parent && at.Kind.nodeKind() == d.Nodes[pid].Kind {
		// Removing first shifts later indices down by one.
		if at.Index > i {
			at.Index--
		}
	}
	d.Detach(id)
	d.Insert(at, id)
}

// GC prunes the arena down to nodes reachable from Root. A child edge
// that would revisit a node is a cycle; the edge is dropped and the
// revisit logged, which degrades a corrupt tree (e.g. from bad storage)
// into a valid one instead of hanging. Unreachable leaves survive the
// sweep when retainLeaf says so, keeping closed-but-not-forgotten panes
// available for reopening.
func (d *Dock[P]) GC(retainLeaf func(P) bool) {
	visited := make(map[NodeID]bool, len(d.Nodes))
	if !d.Root.IsZero() {
		d.gcWalk(d.Root, visited)
	}
	for id, n := range d.Nodes {
		if visited[id] {
			continue
		}
		if n.Kind == NodeLeaf && retainLeaf != nil && retainLeaf(n.Pane) {
			continue
		}
		delete(d.Nodes, id)
		delete(d.rects, id)
	}
	// Drop share entries for children that went away.
	for _, n := range d.Nodes {
		if n.Shares != nil {
			n.Shares.Retain(func(id NodeID) bool { return n.childIndex(id) >= 0 })
		}
	}
}

func (d *Dock[P]) gcWalk(id NodeID, visited map[NodeID]bool) {
	visited[id] = true
	n := d.Nodes[id]
	if n == nil || !n.IsContainer() {
		return
	}
	kept := n.Children[:0]
	for _, c := range n.Children {
		if visited[c] {
			guiLogger.Warn("dock cycle detected, dropping edge", "parent", id, "child", c)
			delete(n.Shares, c)
			continue
		}
		if d.Nodes[c] == nil {
			delete(n.Shares, c)
			continue
		}
		kept = append(kept, c)
		d.gcWalk(c, visited)
	}
	n.Children = kept
	if n.Kind == NodeTabs && n.childIndex(n.Active) < 0 {
		n.Active = NodeID{}
		if len(n.Children) > 0 {
			n.Active = n.Children[0]
		}
	}
}

// Simplify collapses degenerate containers: empty containers are detached
// and single-child containers are replaced by their child. The root is
// left alone even when single-child, so the tree always has a stable top.
func (d *Dock[P]) Simplify() {
	for changed := true; changed; {
		changed = false
		for id, n := range d.Nodes {
			if !n.IsContainer() || id == d.Root {
				continue
			}
			switch len(n.Children) {
			case 0:
				if d.Detach(id) {
					delete(d.Nodes, id)
					changed = true
				}
			case 1:
				child := n.Children[0]
				if pid, i, ok := d.ParentOf(id); ok {
					p := d.Nodes[pid]
					share := p.Shares.Share(id)
					p.Children[i] = child
					delete(p.Shares, id)
					p.Shares.Set(child, share)
					if p.Kind == NodeTabs && p.Active == id {
						p.Active = child
					}
					delete(d.Nodes, id)
					changed = true
				}
			}
		}
	}
}

// Layout solves every visible node's rect for this frame. Tabs containers
// reserve tabBarHeight at the top and give the rest to the active child.
func (d *Dock[P]) Layout(root Rect, tabBarHeight float32) {
	clear(d.rects)
	if d.Root.IsZero() {
		return
	}
	d.layoutNode(d.Root, root, tabBarHeight)
}

func (d *Dock[P]) layoutNode(id NodeID, rect Rect, tabBarHeight float32) {
	n := d.Nodes[id]
	if n == nil {
		return
	}
	d.rects[id] = rect

	switch n.Kind {
	case NodeLeaf:
		// Nothing below.

	case NodeTabs:
		body := Rect{X: rect.X, Y: rect.Y + tabBarHeight, W: rect.W, H: maxf(rect.H-tabBarHeight, 0)}
		for _, c := range n.Children {
			// Inactive children keep a rect so drag previews can target
			// them, but only the active child gets real space.
			if c == n.Active {
				d.layoutNode(c, body, tabBarHeight)
			} else {
				d.rects[c] = Rect{X: body.X, Y: body.Y}
			}
		}

	case NodeHorizontal:
		gaps := d.Gap * float32(len(n.Children)-1)
		widths := n.Shares.Split(n.Children, maxf(rect.W-gaps, 0))
		x := rect.X
		for i, c := range n.Children {
			d.layoutNode(c, Rect{X: x, Y: rect.Y, W: widths[i], H: rect.H}, tabBarHeight)
			x += widths[i] + d.Gap
		}

	case NodeVertical:
		gaps := d.Gap * float32(len(n.Children)-1)
		heights := n.Shares.Split(n.Children, maxf(rect.H-gaps, 0))
		y := rect.Y
		for i, c := range n.Children {
			d.layoutNode(c, Rect{X: rect.X, Y: y, W: rect.W, H: heights[i]}, tabBarHeight)
			y += heights[i] + d.Gap
		}

	case NodeGrid:
		count := len(n.Children)
		if count == 0 {
			return
		}
		cols := int(math.Ceil(math.Sqrt(float64(count))))
		rows := (count + cols - 1) / cols
		cellW := (rect.W - d.Gap*float32(cols-1)) / float32(cols)
		cellH := (rect.H - d.Gap*float32(rows-1)) / float32(rows)
		for i, c := range n.Children {
			col := i % cols
			row := i / cols
			cell := Rect{
				X: rect.X + float32(col)*(cellW+d.Gap),
				Y: rect.Y + float32(row)*(cellH+d.Gap),
				W: cellW, H: cellH,
			}
			d.layoutNode(c, cell, tabBarHeight)
		}
	}
}

// DropZone is one candidate target for a dragged node: a preview rect to
// highlight and the insertion that dropping there performs.
type DropZone struct {
	Preview Rect
	At      InsertionPoint
}

// FindDropZone returns the best drop target under pos for the dragged
// node, preferring the zone whose preview center is nearest the pointer.
func (d *Dock[P]) FindDropZone(pos Vec2, dragged NodeID) (DropZone, bool) {
	var best DropZone
	bestDist := float32(math.MaxFloat32)
	found := false

	consider := func(z DropZone) {
		if !z.Preview.Contains(pos) {
			return
		}
		dist := z.Preview.Center().Distance(pos)
		if dist < bestDist {
			best = z
			bestDist = dist
			found = true
		}
	}

	for id, n := range d.Nodes {
		if d.Contains(dragged, id) {
			continue
		}
		rect, ok := d.rects[id]
		if !ok || rect.W <= 0 || rect.H <= 0 {
			continue
		}
		switch n.Kind {
		case NodeHorizontal, NodeVertical:
			for _, z := range d.linearDropZones(id, n, dragged) {
				consider(z)
			}
		case NodeLeaf:
			for _, z := range leafDropZones(id, rect) {
				consider(z)
			}
		}
	}
	return best, found
}

// linearDropZones yields one zone per insertion index of a linear
// container: before the first child, between each adjacent pair, and
// after the last. The dragged child's own indices are excluded (dropping
// there would be a no-op move), but its current rect is offered back as a
// zone so releasing in place cancels cleanly.
func (d *Dock[P]) linearDropZones(id NodeID, n *Node[P], dragged NodeID) []DropZone {
	horizontal := n.Kind == NodeHorizontal
	kind := InsertHorizontal
	if !horizontal {
		kind = InsertVertical
	}

	zones := make([]DropZone, 0, len(n.Children)+2)
	draggedIdx := n.childIndex(dragged)

	for i := 0; i <= len(n.Children); i++ {
		if i == draggedIdx || i == draggedIdx+1 {
			continue
		}
		var preview Rect
		switch {
		case i == 0:
			preview = halfRect(d.rects[n.Children[0]], horizontal, false)
		case i == len(n.Children):
			preview = halfRect(d.rects[n.Children[i-1]], horizontal, true)
		default:
			a := halfRect(d.rects[n.Children[i-1]], horizontal, true)
			b := halfRect(d.rects[n.Children[i]], horizontal, false)
			preview = a.Union(b)
		}
		zones = append(zones, DropZone{
			Preview: preview,
			At:      InsertionPoint{Parent: id, Kind: kind, Index: i},
		})
	}

	if draggedIdx >= 0 {
		zones = append(zones, DropZone{
			Preview: d.rects[dragged],
			At:      InsertionPoint{Parent: id, Kind: kind, Index: draggedIdx},
		})
	}
	return zones
}

// leafDropZones splits a leaf's rect into edge bands that create new
// splits and a center band that stacks as tabs.
func leafDropZones(id NodeID, rect Rect) []DropZone {
	bandW := rect.W * 0.25
	bandH := rect.H * 0.25
	return []DropZone{
		{
			Preview: Rect{X: rect.X, Y: rect.Y, W: bandW, H: rect.H},
			At:      InsertionPoint{Parent: id, Kind: InsertHorizontal, Index: 0},
		},
		{
			Preview: Rect{X: rect.X + rect.W - bandW, Y: rect.Y, W: bandW, H: rect.H},
			At:      InsertionPoint{Parent: id, Kind: InsertHorizontal, Index: 1},
		},
		{
			Preview: Rect{X: rect.X, Y: rect.Y, W: rect.W, H: bandH},
			At:      InsertionPoint{Parent: id, Kind: InsertVertical, Index: 0},
		},
		{
			Preview: Rect{X: rect.X, Y: rect.Y + rect.H - bandH, W: rect.W, H: bandH},
			At:      InsertionPoint{Parent: id, Kind: InsertVertical, Index: 1},
		},
		{
			Preview: Rect{X: rect.X + bandW, Y: rect.Y + bandH, W: rect.W - 2*bandW, H: rect.H - 2*bandH},
			At:      InsertionPoint{Parent: id, Kind: InsertTabs, Index: 1},
		},
	}
}

// halfRect returns the leading or trailing half of rect along the split axis.
func halfRect(rect Rect, horizontal, trailing bool) Rect {
	if horizontal {
		half := rect.W / 2
		if trailing {
			return Rect{X: rect.X + half, Y: rect.Y, W: half, H: rect.H}
		}
		return Rect{X: rect.X, Y: rect.Y, W: half, H: rect.H}
	}
	half := rect.H / 2
	if trailing {
		return Rect{X: rect.X, Y: rect.Y + half, W: rect.W, H: half}
	}
	return Rect{X: rect.X, Y: rect.Y, W: rect.W, H: half}
}
