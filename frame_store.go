package gui

import "sync"

// Cleanable is a store that drops stale entries once per frame.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

// All FrameStores register here so NextFrame can sweep them.
var (
	registeredStores []Cleanable
	registryMu       sync.Mutex
	currentFrame     uint64
)

func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

// NextFrame advances the frame counter and sweeps every registered
// store, dropping entries no widget touched last frame. Context.Reset
// calls this once per frame.
func NextFrame() {
	currentFrame++
	registryMu.Lock()
	stores := registeredStores
	registryMu.Unlock()

	for _, store := range stores {
		store.Cleanup(currentFrame)
	}
}

// CurrentFrameCount returns the global frame counter.
func CurrentFrameCount() uint64 {
	return currentFrame
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore holds per-widget state of one concrete type, keyed by
// widget ID. Entries expire automatically when their widget stops
// drawing, and access needs no type assertions, unlike the any-valued
// StateStore.
//
// Create one per state type at package level:
//
//	var headerStore = gui.NewFrameStore[CollapsingHeaderState]()
//
//	func (ctx *Context) Header(label string) {
//	    state := headerStore.Get(ctx.GetID(label), CollapsingHeaderState{})
//	    state.Open = !state.Open // pointer, writes stick
//	}
//
// User-defined widgets can make their own stores the same way.
type FrameStore[T any] struct {
	states map[ID]*stateEntry[T]
	mu     sync.RWMutex
}

// NewFrameStore creates a store and registers it for the per-frame
// sweep. Call from a package-level var.
func NewFrameStore[T any]() *FrameStore[T] {
	store := &FrameStore[T]{
		states: make(map[ID]*stateEntry[T]),
	}
	registerStore(store)
	return store
}

// Get returns a pointer to the ID's state, creating it from defaultVal
// on first use. The entry is marked live for this frame. Safe for
// concurrent use.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[id]
	if !ok {
		entry = &stateEntry[T]{value: defaultVal}
		s.states[id] = entry
	}
	entry.lastFrame = currentFrame
	return &entry.value
}

// GetIfExists returns the ID's state or nil, without creating an entry
// or marking it live.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Set stores a value for the ID and marks it live for this frame.
func (s *FrameStore[T]) Set(id ID, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		entry.value = value
		entry.lastFrame = currentFrame
	} else {
		s.states[id] = &stateEntry[T]{value: value, lastFrame: currentFrame}
	}
}

// Delete removes the ID's state immediately.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// Cleanup drops entries not touched in the previous frame. NextFrame
// calls this; don't call it directly.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// frame was already incremented, so live entries carry frame-1
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Clear drops every entry, for scene switches and tests.
func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	s.states = make(map[ID]*stateEntry[T])
	s.mu.Unlock()
}
