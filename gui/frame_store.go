package gui

import "sync"

// Cleanable is implemented by stores that need frame-based cleanup.
// Each frame, stale entries (not accessed this frame) are removed.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

// Global registry for automatic cleanup of all FrameStores.
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

// NextFrame advances the frame counter and cleans all registered stores.
// Context.Reset calls it once per frame.
func NextFrame() {
	registryMu.Lock()
	currentFrame++
	frame := currentFrame
	stores := registeredStores
	registryMu.Unlock()

	for _, store := range stores {
		store.Cleanup(frame)
	}
}

func frameNow() uint64 {
	registryMu.Lock()
	defer registryMu.Unlock()
	return currentFrame
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a type-safe store for transient widget state that
// drops entries not touched during the previous frame.
//
// It suits state that only matters while a widget is on screen, such as
// an in-progress drag. State that must survive a widget being hidden
// (a collapsed tool window, an inactive tab) belongs in the StateStore.
//
//	var dragStore = gui.NewFrameStore[DragValueState]()
//	state := dragStore.Get(id, DragValueState{})
type FrameStore[T any] struct {
	states map[ID]*stateEntry[T]
	mu     sync.RWMutex
}

// NewFrameStore creates a store and registers it for cleanup.
// Call this at package initialization time.
func NewFrameStore[T any]() *FrameStore[T] {
	store := &FrameStore[T]{
		states: make(map[ID]*stateEntry[T]),
	}
	registerStore(store)
	return store
}

// Get retrieves state for the given ID, or creates it with defaultVal.
// The returned pointer stays valid until the entry is cleaned up.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	frame := frameNow()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[id]
	if !ok {
		entry = &stateEntry[T]{value: defaultVal}
		s.states[id] = entry
	}
	entry.lastFrame = frame
	return &entry.value
}

// GetIfExists retrieves state only if it already exists.
// It does not mark the entry as used.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Delete explicitly removes state for an ID.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// Cleanup removes all entries that weren't accessed in the previous frame.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if frame == 0 {
		return
	}
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
