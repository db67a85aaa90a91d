// Package shapes holds the fixed vertex data drawn by the example programs.
package shapes

// Topology says how a vertex sequence is assembled into primitives.
type Topology int

const (
	Points Topology = iota
	Lines
	Triangles
	Quads
)

func (t Topology) String() string {
	switch t {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case Triangles:
		return "triangles"
	case Quads:
		return "quads"
	}
	return "unknown"
}

// PositionSize is the number of floats in a vertex position (x,y,z).
const PositionSize = 3

// Shape is a run of vertex positions drawn with a single topology.
type Shape struct {
	Name      string
	Topology  Topology
	Positions []float32
}

// Count returns the number of vertices in the shape.
func (s Shape) Count() int {
	return len(s.Positions) / PositionSize
}

var (
	Point = Shape{
		Name:     "point",
		Topology: Points,
		Positions: []float32{
			0.0, 0.0, 0.0,
		},
	}

	Line = Shape{
		Name:     "line",
		Topology: Lines,
		Positions: []float32{
			-0.5, -0.5, 0.0,
			0.5, 0.5, 0.0,
		},
	}

	Triangle = Shape{
		Name:     "triangle",
		Topology: Triangles,
		Positions: []float32{
			-0.5, -0.5, 0.0, // bottom-left
			0.5, -0.5, 0.0, // bottom-right
			0.0, 0.5, 0.0, // top
		},
	}

	Quad = Shape{
		Name:     "quad",
		Topology: Quads,
		Positions: []float32{
			-0.5, -0.5, 0.0, // bottom-left
			0.5, -0.5, 0.0, // bottom-right
			0.5, 0.5, 0.0, // top-right
			-0.5, 0.5, 0.0, // top-left
		},
	}
)

// Primitives returns one shape of every topology, in draw order.
func Primitives() []Shape {
	return []Shape{Point, Line, Triangle, Quad}
}
