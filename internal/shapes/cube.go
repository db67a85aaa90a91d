package shapes

const (
	CubeNormalOffset = 3 // normal begins after the position
	CubeVertexSize   = 6 // x,y,z + nx,ny,nz
)

// unit cube centered on the origin
//
//    v7----- v6
//   /|      /|
//  v3------v2|
//  | |     | |
//  | v4----|-v5
//  |/      |/
//  v0------v1
//
// Normals point away from the center through each corner, so the
// lighting is smoothed across the faces.
var CubeVertices = []float32{
	-0.5, -0.5, -0.5, -1, -1, -1, // v0
	0.5, -0.5, -0.5, 1, -1, -1, // v1
	0.5, 0.5, -0.5, 1, 1, -1, // v2
	-0.5, 0.5, -0.5, -1, 1, -1, // v3
	-0.5, -0.5, 0.5, -1, -1, 1, // v4
	0.5, -0.5, 0.5, 1, -1, 1, // v5
	0.5, 0.5, 0.5, 1, 1, 1, // v6
	-0.5, 0.5, 0.5, -1, 1, 1, // v7
}

// CubeIndices holds two triangles per face.
var CubeIndices = []uint32{
	0, 1, 2, 2, 3, 0, // front
	4, 5, 6, 6, 7, 4, // back
	4, 5, 1, 1, 0, 4, // bottom
	7, 6, 2, 2, 3, 7, // top
	4, 7, 3, 3, 0, 4, // left
	1, 5, 6, 6, 2, 1, // right
}
