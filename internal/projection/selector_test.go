package projection

import "testing"

func keys(held ...rune) func(rune) bool {
	return func(r rune) bool {
		for _, h := range held {
			if h == r {
				return true
			}
		}
		return false
	}
}

func TestSelectorInitial(t *testing.T) {
	s := NewSelector()
	if _, ok := s.Current().(Orthographic); !ok {
		t.Fatalf("initial projection expected to be orthographic, got %s", s.Current())
	}

	s.Update(keys())
	if _, ok := s.Current().(Orthographic); !ok {
		t.Errorf("projection expected to stay orthographic without input, got %s", s.Current())
	}
}

func TestSelectorUpdate(t *testing.T) {
	testCases := []struct {
		held     []rune
		expected Kind
	}{
		{[]rune{'2'}, Perspective{}},
		{[]rune{'2'}, Perspective{}},
		{nil, Perspective{}},
		{[]rune{'3'}, Oblique{}},
		{[]rune{'x', 'q'}, Oblique{}},
		{[]rune{'1'}, Orthographic{}},
		{[]rune{'3', '1'}, Oblique{}},
		{[]rune{'1', '2'}, Perspective{}},
	}

	s := NewSelector()
	for i, tt := range testCases {
		s.Update(keys(tt.held...))
		if s.Current() != tt.expected {
			t.Errorf("[%d] held %q: expected %s, got %s",
				i, string(tt.held), tt.expected, s.Current(),
			)
		}
	}
}

func TestSelectorPress(t *testing.T) {
	s := NewSelector()

	if !s.Press('2') {
		t.Fatal("'2' expected to be bound")
	}
	if s.Current() != (Perspective{}) {
		t.Errorf("expected perspective, got %s", s.Current())
	}

	if !s.Press('1') {
		t.Fatal("'1' expected to be bound")
	}
	if s.Current() != (Orthographic{}) {
		t.Errorf("expected orthographic, got %s", s.Current())
	}

	if s.Press('9') {
		t.Error("'9' expected to be unbound")
	}
	if s.Current() != (Orthographic{}) {
		t.Errorf("unbound key changed projection to %s", s.Current())
	}
}

func TestSelectorMatrix(t *testing.T) {
	s := NewSelector()
	s.Press('3')
	expectMat4(t, "oblique", Select(Oblique{}, 1), s.Matrix(800.0/600.0), 0)
}
