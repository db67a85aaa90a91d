package shapes

import (
	"math"
	"testing"
)

func TestPrimitives(t *testing.T) {
	testCases := []struct {
		name     string
		topology Topology
		count    int
	}{
		{"point", Points, 1},
		{"line", Lines, 2},
		{"triangle", Triangles, 3},
		{"quad", Quads, 4},
	}

	prims := Primitives()
	if len(prims) != len(testCases) {
		t.Fatalf("expected %d primitives, got %d", len(testCases), len(prims))
	}
	for i, tt := range testCases {
		s := prims[i]
		if s.Name != tt.name {
			t.Errorf("[%d] expected name %q, got %q", i, tt.name, s.Name)
		}
		if s.Topology != tt.topology {
			t.Errorf("[%d] %s: expected topology %s, got %s", i, s.Name, tt.topology, s.Topology)
		}
		if s.Count() != tt.count {
			t.Errorf("[%d] %s: expected %d vertices, got %d", i, s.Name, tt.count, s.Count())
		}
		if len(s.Positions)%PositionSize != 0 {
			t.Errorf("[%d] %s: %d floats is not a whole number of positions", i, s.Name, len(s.Positions))
		}
	}
}

func TestFinite(t *testing.T) {
	all := map[string][]float32{"cube": CubeVertices}
	for _, s := range Primitives() {
		all[s.Name] = s.Positions
	}
	for name, data := range all {
		for i, v := range data {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				t.Errorf("%s[%d] is not finite: %v", name, i, v)
			}
		}
	}
}

func TestCube(t *testing.T) {
	if len(CubeVertices)%CubeVertexSize != 0 {
		t.Fatalf("%d floats is not a whole number of vertices", len(CubeVertices))
	}
	vertexCount := uint32(len(CubeVertices) / CubeVertexSize)
	if vertexCount != 8 {
		t.Errorf("expected 8 vertices, got %d", vertexCount)
	}
	if len(CubeIndices) != 36 {
		t.Errorf("expected 36 indices, got %d", len(CubeIndices))
	}
	for i, idx := range CubeIndices {
		if idx >= vertexCount {
			t.Errorf("index %d out of range: %d", i, idx)
		}
	}

	// normals point the same way as the corner position
	for v := 0; v < int(vertexCount); v++ {
		base := v * CubeVertexSize
		for k := 0; k < 3; k++ {
			p := CubeVertices[base+k]
			n := CubeVertices[base+CubeNormalOffset+k]
			if (p < 0) != (n < 0) {
				t.Errorf("v%d: normal component %d (%v) disagrees with position (%v)", v, k, n, p)
			}
		}
	}
}

func TestTopologyString(t *testing.T) {
	if s := Topology(42).String(); s != "unknown" {
		t.Errorf("expected unknown, got %q", s)
	}
	if s := Quads.String(); s != "quads" {
		t.Errorf("expected quads, got %q", s)
	}
}
