package models

import (
	"path/filepath"
	"testing"

	"github.com/taigrr/unclip/pkg/math3d"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if loader == nil {
		t.Fatal("NewGLTFLoader returned nil")
	}
	if !loader.ApplyNodeTransforms {
		t.Error("ApplyNodeTransforms should default to true")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	scene := DemoScene()

	doc, err := Document(scene)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	loaded, err := NewGLTFLoader().LoadDocument(doc)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}

	if loaded.VertexCount() != scene.VertexCount() {
		t.Errorf("vertex count = %d, want %d", loaded.VertexCount(), scene.VertexCount())
	}
	if loaded.TriangleCount() != scene.TriangleCount() {
		t.Errorf("triangle count = %d, want %d", loaded.TriangleCount(), scene.TriangleCount())
	}
	if loaded.Bounds() != scene.Bounds() {
		t.Errorf("bounds = %+v, want %+v", loaded.Bounds(), scene.Bounds())
	}
	for i := range scene.Faces {
		if loaded.Faces[i] != scene.Faces[i] {
			t.Fatalf("face %d = %v, want %v", i, loaded.Faces[i], scene.Faces[i])
		}
	}
}

func TestSaveAndLoadGLB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.glb")
	box := BoxMesh("box", math3d.V3(-1, -2, -3), math3d.V3(1, 2, 3))

	if err := SaveGLB(box, path); err != nil {
		t.Fatalf("SaveGLB: %v", err)
	}

	mesh, err := LoadGLB(path)
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}
	if mesh.Name != "box.glb" {
		t.Errorf("name = %q, want box.glb", mesh.Name)
	}
	if mesh.TriangleCount() != 12 {
		t.Errorf("triangle count = %d, want 12", mesh.TriangleCount())
	}
	if d := mesh.Bounds().Diagonal(); d != box.Bounds().Diagonal() {
		t.Errorf("diagonal = %v, want %v", d, box.Bounds().Diagonal())
	}
}

func TestDocumentEmptyMesh(t *testing.T) {
	if _, err := Document(NewMesh("empty")); err == nil {
		t.Error("expected error for empty mesh")
	}
}
