// Package projection chooses the projection matrix applied to the scene.
//
// A Kind is one of Orthographic, Perspective or Oblique. The set is closed:
// Kind carries an unexported method so no other package can add a variant,
// and every variant builds its own matrix, so there is no switch that can
// miss a case.
package projection

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// FieldOfView is the vertical field of view of the perspective
	// projection, in degrees.
	FieldOfView = 45.0
	Near        = 0.1
	Far         = 100.0

	// Skew is the shear term written into the oblique matrix.
	Skew = -0.5
)

// Kind is a projection variant.
type Kind interface {
	// Matrix returns the projection for a viewport with the given
	// width/height ratio. The ratio has already been validated.
	Matrix(aspect float32) mgl32.Mat4

	String() string

	kind()
}

// Orthographic maps the box [-1,1]^3 straight onto clip space.
type Orthographic struct{}

// Perspective is a symmetric frustum of FieldOfView degrees.
type Perspective struct{}

// Oblique is the identity with a single shear term. It is a visual effect,
// not a depth dependent oblique projection.
type Oblique struct{}

func (Orthographic) Matrix(float32) mgl32.Mat4 {
	return mgl32.Ortho(-1, 1, -1, 1, -1, 1)
}

func (Perspective) Matrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, Near, Far)
}

func (Oblique) Matrix(float32) mgl32.Mat4 {
	m := mgl32.Ident4()
	// column 0, row 1
	m.Set(1, 0, Skew)
	return m
}

func (Orthographic) String() string { return "orthographic" }
func (Perspective) String() string  { return "perspective" }
func (Oblique) String() string      { return "oblique" }

func (Orthographic) kind() {}
func (Perspective) kind()  {}
func (Oblique) kind()      {}

// Select returns the matrix for kind k at the given viewport aspect ratio.
// An aspect that is not a finite positive number is treated as 1.
func Select(k Kind, aspect float32) mgl32.Mat4 {
	return k.Matrix(SanitizeAspect(aspect))
}

// SanitizeAspect returns aspect, or 1 if aspect is zero, negative, NaN or
// infinite.
func SanitizeAspect(aspect float32) float32 {
	a := float64(aspect)
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return 1
	}
	return aspect
}
