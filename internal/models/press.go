package models

import "sync"

// PressKind distinguishes the two press-and-hold control families.
type PressKind string

const (
	PressSlot PressKind = "slot"
	PressQuiz PressKind = "quiz"
)

// Press identifies the control currently held down.
type Press struct {
	Kind PressKind
	Key  string
}

// InputState tracks which control is pressed and whether input is locked.
// At most one control can be pressed at a time, and no new press begins
// while input is locked (feedback audio playing).
type InputState struct {
	mu      sync.RWMutex
	pressed *Press
	locked  bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// BeginPress registers a press. It fails when input is locked or another
// control is already pressed.
func (s *InputState) BeginPress(kind PressKind, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked || s.pressed != nil {
		return false
	}
	s.pressed = &Press{Kind: kind, Key: key}
	return true
}

// EndPress clears the press if it matches the registered one.
func (s *InputState) EndPress(kind PressKind, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pressed != nil && s.pressed.Kind == kind && s.pressed.Key == key {
		s.pressed = nil
	}
}

// Pressed returns the current press, if any.
func (s *InputState) Pressed() (Press, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.pressed == nil {
		return Press{}, false
	}
	return *s.pressed, true
}

// IsPressed reports whether the given control is the one held down.
func (s *InputState) IsPressed(kind PressKind, key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pressed != nil && s.pressed.Kind == kind && s.pressed.Key == key
}

// Lock blocks new presses until Unlock.
func (s *InputState) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = true
}

// Unlock re-enables input.
func (s *InputState) Unlock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = false
}

// Locked reports whether input is locked.
func (s *InputState) Locked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locked
}

// ForceRelease clears the press and the lock unconditionally. Used by
// abort, which must recover from any state.
func (s *InputState) ForceRelease() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pressed = nil
	s.locked = false
}
