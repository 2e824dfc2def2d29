// Package text holds the toggleable text state: one reactive string with an
// edit and a reset operation.
package text

import "github.com/n3eg/fetchx/store"

// Default is the value Reset restores.
const Default = "N3EG"

// State is a single mutable string living for the session. No validation,
// no persistence.
type State struct {
	v *store.Value[string]
}

func New() *State {
	return &State{v: store.New(Default)}
}

// Text returns the current value.
func (s *State) Text() string { return s.v.Get() }

// Edit sets the value unconditionally.
func (s *State) Edit(value string) { s.v.Set(value) }

// Reset restores the fixed default.
func (s *State) Reset() { s.v.Set(Default) }

// Watch observes changes; the callback runs synchronously on each set.
func (s *State) Watch(fn func(string)) (cancel func()) {
	return s.v.Subscribe(fn)
}
