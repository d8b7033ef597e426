// Package models loads scene geometry and reports its bounds.
package models

import (
	"github.com/taigrr/unclip/pkg/math3d"
)

// Mesh is triangle soup with a cached bounding box.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    [][3]int // indices into Vertices

	bounds Box
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([][3]int, 0),
	}
}

// CalculateBounds recomputes the axis-aligned bounding box.
// An empty mesh has a zero box at the origin.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.bounds = Box{}
		return
	}

	m.bounds = Box{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		m.bounds = m.bounds.Expand(v)
	}
}

// Bounds returns the bounding box computed by the last CalculateBounds.
func (m *Mesh) Bounds() Box {
	return m.bounds
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Append adds other's triangles to m.
func (m *Mesh) Append(other *Mesh) {
	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, f := range other.Faces {
		m.Faces = append(m.Faces, [3]int{base + f[0], base + f[1], base + f[2]})
	}
	m.CalculateBounds()
}

// GetVertex returns the position of vertex i.
// Implements render.Mesh.
func (m *Mesh) GetVertex(i int) math3d.Vec3 {
	return m.Vertices[i]
}

// GetFace returns the vertex indices for face i.
// Implements render.Mesh.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i]
}

// GetBounds returns the axis-aligned bounding box.
// Implements render.Mesh.
func (m *Mesh) GetBounds() (min, max math3d.Vec3) {
	return m.bounds.Min, m.bounds.Max
}
