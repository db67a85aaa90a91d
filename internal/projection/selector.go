package projection

import "github.com/go-gl/mathgl/mgl32"

// Binding ties a key to the projection it selects.
type Binding struct {
	Key  rune
	Kind Kind
}

// DefaultBindings are checked in this order on every update.
var DefaultBindings = []Binding{
	{'1', Orthographic{}},
	{'2', Perspective{}},
	{'3', Oblique{}},
}

// Selector holds the active projection. The zero value is not usable, use
// NewSelector.
type Selector struct {
	current  Kind
	bindings []Binding
}

// NewSelector returns a selector starting in Orthographic mode with the
// default key bindings.
func NewSelector() *Selector {
	return &Selector{
		current:  Orthographic{},
		bindings: DefaultBindings,
	}
}

// Current returns the active projection.
func (s *Selector) Current() Kind {
	return s.current
}

// Press applies a single key. It reports whether the key is bound.
// Re-selecting the active kind is allowed and changes nothing.
func (s *Selector) Press(key rune) bool {
	for _, b := range s.bindings {
		if b.Key == key {
			s.current = b.Kind
			return true
		}
	}
	return false
}

// Update samples the keyboard once. pressed reports whether a key is held
// down right now. A held key re-applies its projection on every call, and
// when several bound keys are held the last binding wins.
func (s *Selector) Update(pressed func(key rune) bool) {
	for _, b := range s.bindings {
		if pressed(b.Key) {
			s.current = b.Kind
		}
	}
}

// Matrix returns the matrix of the active projection.
func (s *Selector) Matrix(aspect float32) mgl32.Mat4 {
	return Select(s.current, aspect)
}
