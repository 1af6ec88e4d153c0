package gui

// Shares maps each child of a linear container to its proportional weight.
// A child gets width (or height) proportional to share/sum. Children with
// no entry weigh 1, so a fresh container splits space evenly.
//
// Shares are dimensionless: resizing the container rescales every child,
// and dragging a divider only moves weight between the two sides, so the
// total is conserved.
type Shares map[NodeID]float32

// Share returns the weight for a child, defaulting to 1.
func (s Shares) Share(id NodeID) float32 {
	if share, ok := s[id]; ok {
		return share
	}
	return 1
}

// Set assigns a child's weight. Non-positive weights are clamped to a
// small epsilon so a child never vanishes entirely.
func (s Shares) Set(id NodeID, share float32) {
	s[id] = maxf(share, 0.0001)
}

// Sum returns the total weight of the given children.
func (s Shares) Sum(children []NodeID) float32 {
	total := float32(0)
	for _, id := range children {
		total += s.Share(id)
	}
	return total
}

// Split converts weights into sizes for the given available extent.
// The returned sizes sum to available (up to float rounding).
func (s Shares) Split(children []NodeID, available float32) []float32 {
	sizes := make([]float32, len(children))
	total := s.Sum(children)
	if total <= 0 {
		return sizes
	}
	for i, id := range children {
		sizes[i] = available * s.Share(id) / total
	}
	return sizes
}

// Retain drops entries for children that no longer exist.
func (s Shares) Retain(keep func(NodeID) bool) {
	for id := range s {
		if !keep(id) {
			delete(s, id)
		}
	}
}

// Equalize sets both children to the mean of their weights. Bound to
// double-clicking the divider between them.
func (s Shares) Equalize(a, b NodeID) {
	mean := (s.Share(a) + s.Share(b)) / 2
	s.Set(a, mean)
	s.Set(b, mean)
}

// shrink takes up to shrinkBy weight from the children in order, never
// pushing any child below minShare, and returns how much was actually
// taken. Callers order the slice outward from the divider so the nearest
// sibling gives first and the deficit cascades to the ones behind it.
func (s Shares) shrink(order []NodeID, shrinkBy, minShare float32) float32 {
	taken := float32(0)
	for _, id := range order {
		if taken >= shrinkBy {
			break
		}
		spend := minf(s.Share(id)-minShare, shrinkBy-taken)
		if spend <= 0 {
			continue
		}
		s.Set(id, s.Share(id)-spend)
		taken += spend
	}
	return taken
}

// DragDivider moves weight across the divider between children[i] and
// children[i+1] by dx points (positive = toward higher indices). The
// shrinking side gives weight outward from the divider, respecting each
// child's minimum size, and the growing side's nearest child receives
// exactly what was taken, so the total weight is conserved.
//
// availablePoints is the container's extent along the split axis and
// minPoints the smallest size any child may reach.
func (s Shares) DragDivider(children []NodeID, i int, dx, availablePoints, minPoints float32) {
	if i < 0 || i+1 >= len(children) || dx == 0 || availablePoints <= 0 {
		return
	}
	sharesPerPoint := s.Sum(children) / availablePoints
	wanted := absf(dx) * sharesPerPoint
	minShare := minPoints * sharesPerPoint

	if dx > 0 {
		// Divider moves right: everything after it shrinks, nearest first.
		order := make([]NodeID, 0, len(children)-i-1)
		for j := i + 1; j < len(children); j++ {
			order = append(order, children[j])
		}
		taken := s.shrink(order, wanted, minShare)
		s.Set(children[i], s.Share(children[i])+taken)
	} else {
		order := make([]NodeID, 0, i+1)
		for j := i; j >= 0; j-- {
			order = append(order, children[j])
		}
		taken := s.shrink(order, wanted, minShare)
		s.Set(children[i+1], s.Share(children[i+1])+taken)
	}
}
