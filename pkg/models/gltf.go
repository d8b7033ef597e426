package models

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/unclip/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// ApplyNodeTransforms bakes node translation, rotation and scale into
	// the vertices so bounds match what a viewer shows.
	ApplyNodeTransforms bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		ApplyNodeTransforms: true,
	}
}

// LoadGLB loads a binary GLTF (.glb) or .gltf file.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := l.LoadDocument(doc)
	if err != nil {
		return nil, err
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// LoadDocument converts an already decoded document.
//
// Every node with a mesh contributes that mesh, placed by the node's own
// transform when enabled. Parent transforms are not accumulated. A document
// without nodes has its meshes read as-is.
func (l *GLTFLoader) LoadDocument(doc *gltf.Document) (*Mesh, error) {
	mesh := NewMesh("scene")

	if len(doc.Nodes) == 0 {
		for _, m := range doc.Meshes {
			part, err := l.readMesh(doc, m)
			if err != nil {
				return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
			}
			mesh.Append(part)
		}
		return mesh, nil
	}

	for _, node := range doc.Nodes {
		if node.Mesh == nil {
			continue
		}
		m := doc.Meshes[*node.Mesh]
		part, err := l.readMesh(doc, m)
		if err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
		if l.ApplyNodeTransforms {
			part.Transform(nodeMatrix(node))
		}
		mesh.Append(part)
	}

	return mesh, nil
}

// readMesh extracts the triangle primitives of a GLTF mesh.
func (l *GLTFLoader) readMesh(doc *gltf.Document, m *gltf.Mesh) (*Mesh, error) {
	mesh := NewMesh(m.Name)

	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Lines and points carry no volume worth bounding
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}

		base := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, positions...)

		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return nil, fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				face := [3]int{base + indices[i], base + indices[i+1], base + indices[i+2]}
				for _, v := range face {
					if v >= len(mesh.Vertices) {
						return nil, fmt.Errorf("index %d out of range (%d vertices)", v, len(mesh.Vertices))
					}
				}
				mesh.Faces = append(mesh.Faces, face)
			}
		} else {
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Faces = append(mesh.Faces, [3]int{base + i, base + i + 1, base + i + 2})
			}
		}
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// nodeMatrix returns the local transform of a node, either its explicit
// matrix or the composed translation * rotation * scale.
func nodeMatrix(node *gltf.Node) math3d.Mat4 {
	if m := math3d.Mat4(node.Matrix); m != (math3d.Mat4{}) && m != math3d.Identity() {
		return m
	}

	t := math3d.Translate(math3d.V3(node.Translation[0], node.Translation[1], node.Translation[2]))

	// Quaternion (x, y, z, w) to axis-angle
	q := node.Rotation
	r := math3d.Identity()
	if q != [4]float64{0, 0, 0, 1} && q != [4]float64{} {
		angle := 2 * math.Acos(math.Max(-1, math.Min(1, q[3])))
		axis := math3d.V3(q[0], q[1], q[2])
		if axis.Valid() {
			r = math3d.Rotate(axis, angle)
		}
	}

	scale := node.Scale
	if scale == [3]float64{} {
		scale = [3]float64{1, 1, 1}
	}
	s := math3d.Scale(math3d.V3(scale[0], scale[1], scale[2]))

	return t.Mul(r).Mul(s)
}

// readVec3Accessor reads float VEC3 data from a GLTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected FLOAT components, got %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range accessor.Count {
		b := data[i*stride:]
		result[i] = math3d.V3(
			float64(readFloat32(b[0:])),
			float64(readFloat32(b[4:])),
			float64(readFloat32(b[8:])),
		)
	}
	return result, nil
}

// readIndices reads SCALAR index data from a GLTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range accessor.Count {
		b := data[i*stride:]
		switch size {
		case 1:
			result[i] = int(b[0])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(b))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(b))
		}
	}
	return result, nil
}

// accessorBytes returns the bytes backing an accessor, starting at its
// first element, and the element stride.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]

	// External .bin files are resolved by gltf.Open into Data as well
	if buffer.Data == nil {
		return nil, 0, fmt.Errorf("buffer has no data")
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	end := start
	if accessor.Count > 0 {
		end = start + (accessor.Count-1)*stride + elemSize
	}
	if end > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor reads past end of buffer (%d > %d)", end, len(buffer.Data))
	}

	return buffer.Data[start:end], stride, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
