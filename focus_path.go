package gui

// FocusType identifies the kind of focusable widget in the hierarchy.
type FocusType uint8

const (
	// FocusTypeContainer can contain focusable children (scrollables, groups)
	FocusTypeContainer FocusType = iota

	// FocusTypeLeaf is a terminal focusable element (button, input)
	FocusTypeLeaf

	// FocusTypeSection is a collapsible container header
	FocusTypeSection
)

// String returns a human-readable name for the focus type.
func (t FocusType) String() string {
	switch t {
	case FocusTypeContainer:
		return "Container"
	case FocusTypeLeaf:
		return "Leaf"
	case FocusTypeSection:
		return "Section"
	default:
		return "Unknown"
	}
}

// FocusNode is one level of the per-frame focus scope stack. A container
// widget pushes a node on entry and pops it on exit; while the node is on
// the stack, focused descendants report their position into it.
type FocusNode struct {
	ID   ID
	Name string
	Type FocusType
	Rect Rect

	// Parent scope's child-focus report, restored when this scope ends so
	// nested scopes do not clobber each other.
	savedChildFocusSet    bool
	savedChildFocusY      float32
	savedChildFocusHeight float32
}

// FocusInfo is returned by EndFocusScope and tells the container whether a
// descendant had focus, and where. Scrollables use it to keep the focused
// widget visible.
type FocusInfo struct {
	HasFocusedChild bool

	// Position and height of the focused child, for auto-scroll.
	FocusedChildY      float32
	FocusedChildHeight float32
}
