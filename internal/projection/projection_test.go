package projection

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func expectMat4(t *testing.T, name string, expected, actual mgl32.Mat4, tol float32) {
	t.Helper()
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			e, a := expected.At(row, col), actual.At(row, col)
			diff := e - a
			if diff < -tol || tol < diff {
				t.Errorf("%s: m(%d, %d) expected to be %0.6f, got %0.6f",
					name, row, col, e, a,
				)
			}
		}
	}
}

func TestOrthographic(t *testing.T) {
	expected := mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, 1,
	}
	for _, aspect := range []float32{800.0 / 600.0, 1, 0.25, 16.0 / 9.0} {
		expectMat4(t, "orthographic", expected, Select(Orthographic{}, aspect), 0)
	}
}

func TestPerspective(t *testing.T) {
	const (
		aspect = 800.0 / 600.0
		near   = 0.1
		far    = 100.0
	)
	f := 1 / math.Tan(45*math.Pi/180/2)

	var expected mgl32.Mat4
	expected.Set(0, 0, float32(f/aspect))
	expected.Set(1, 1, float32(f))
	expected.Set(2, 2, float32((far+near)/(near-far)))
	expected.Set(2, 3, float32(2*far*near/(near-far)))
	expected.Set(3, 2, -1)

	expectMat4(t, "perspective", expected, Select(Perspective{}, aspect), 1e-5)
}

func TestOblique(t *testing.T) {
	m := Select(Oblique{}, 800.0/600.0)

	for i := 0; i < 16; i++ {
		var expected float32
		switch {
		case i == 1:
			expected = -0.5
		case i%5 == 0:
			expected = 1
		}
		if m[i] != expected {
			t.Errorf("m[%d] expected to be %0.2f, got %0.2f", i, expected, m[i])
		}
	}
}

func TestSelectDeterministic(t *testing.T) {
	kinds := []Kind{Orthographic{}, Perspective{}, Oblique{}}
	for _, k := range kinds {
		a := Select(k, 4.0/3.0)
		b := Select(k, 4.0/3.0)
		for i := range a {
			if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
				t.Errorf("%s: m[%d] differs between calls: %v != %v", k, i, a[i], b[i])
			}
		}
	}
}

func TestSanitizeAspect(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	testCases := []struct {
		aspect   float32
		expected float32
	}{
		{800.0 / 600.0, 800.0 / 600.0},
		{0.5, 0.5},
		{0, 1},
		{-1.5, 1},
		{inf, 1},
		{-inf, 1},
		{nan, 1},
	}

	for i, tt := range testCases {
		if res := SanitizeAspect(tt.aspect); res != tt.expected {
			t.Errorf("[%d] SanitizeAspect(%v) is expected to be %v, got %v",
				i, tt.aspect, tt.expected, res,
			)
		}
	}
}

func TestSelectInvalidAspect(t *testing.T) {
	expected := Select(Perspective{}, 1)
	for _, aspect := range []float32{0, -2, float32(math.NaN())} {
		expectMat4(t, "perspective", expected, Select(Perspective{}, aspect), 0)
	}
}

func TestString(t *testing.T) {
	testCases := map[string]Kind{
		"orthographic": Orthographic{},
		"perspective":  Perspective{},
		"oblique":      Oblique{},
	}
	for expected, k := range testCases {
		if s := k.String(); s != expected {
			t.Errorf("expected %q, got %q", expected, s)
		}
	}
}
