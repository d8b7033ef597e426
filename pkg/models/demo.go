package models

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/unclip/pkg/math3d"
)

// BoxMesh returns the 12 triangles of the box [min, max].
func BoxMesh(name string, min, max math3d.Vec3) *Mesh {
	m := NewMesh(name)
	m.Vertices = []math3d.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z}, // 0
		{X: max.X, Y: min.Y, Z: min.Z}, // 1
		{X: max.X, Y: max.Y, Z: min.Z}, // 2
		{X: min.X, Y: max.Y, Z: min.Z}, // 3
		{X: min.X, Y: min.Y, Z: max.Z}, // 4
		{X: max.X, Y: min.Y, Z: max.Z}, // 5
		{X: max.X, Y: max.Y, Z: max.Z}, // 6
		{X: min.X, Y: max.Y, Z: max.Z}, // 7
	}
	m.Faces = [][3]int{
		{0, 2, 1}, {0, 3, 2}, // back
		{4, 5, 6}, {4, 6, 7}, // front
		{0, 1, 5}, {0, 5, 4}, // bottom
		{3, 7, 6}, {3, 6, 2}, // top
		{0, 4, 7}, {0, 7, 3}, // left
		{1, 2, 6}, {1, 6, 5}, // right
	}
	m.CalculateBounds()
	return m
}

// DemoScene returns a furnished room: a 12 x 3 x 9 shell with a table,
// two columns and a cabinet. A parallel camera standing inside it shows the
// near plane cutting the walls.
func DemoScene() *Mesh {
	scene := NewMesh("demo")
	parts := []*Mesh{
		BoxMesh("room", math3d.V3(-6, 0, -4.5), math3d.V3(6, 3, 4.5)),
		BoxMesh("table", math3d.V3(-1.2, 0, -0.6), math3d.V3(1.2, 0.75, 0.6)),
		BoxMesh("column-west", math3d.V3(-4, 0, -2), math3d.V3(-3.6, 3, -1.6)),
		BoxMesh("column-east", math3d.V3(3.6, 0, 1.6), math3d.V3(4, 3, 2)),
		BoxMesh("cabinet", math3d.V3(4.5, 0, -4.4), math3d.V3(5.9, 2, -3.8)),
	}
	for _, p := range parts {
		scene.Append(p)
	}
	return scene
}

// Document encodes the mesh as a single-node GLTF document with embedded
// buffers.
func Document(mesh *Mesh) (*gltf.Document, error) {
	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("mesh %q has no vertices", mesh.Name)
	}

	positions := make([][3]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	indices := make([]uint32, 0, len(mesh.Faces)*3)
	for _, f := range mesh.Faces {
		indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
	}

	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, positions)
	idx := modeler.WriteIndices(doc, indices)

	doc.Meshes = []*gltf.Mesh{{
		Name: mesh.Name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{gltf.POSITION: pos},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: mesh.Name, Mesh: gltf.Index(0)}}
	if len(doc.Scenes) == 0 {
		doc.Scenes = []*gltf.Scene{{}}
		doc.Scene = gltf.Index(0)
	}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc, nil
}

// SaveGLB writes the mesh as a binary GLTF file.
func SaveGLB(mesh *Mesh, path string) error {
	doc, err := Document(mesh)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}
