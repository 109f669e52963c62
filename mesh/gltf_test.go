package mesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
)

func TestBuildDocument(t *testing.T) {
	tor := Torus{Major: 0.6, Minor: 0.2}
	cloud := tor.Sample(8)

	doc := buildDocument("torus", cloud)

	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("want one mesh with one primitive, got %+v", doc.Meshes)
	}
	prim := doc.Meshes[0].Primitives[0]
	if prim.Mode != gltf.PrimitivePoints {
		t.Errorf("primitive mode = %v, want POINTS", prim.Mode)
	}
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		t.Fatal("primitive has no POSITION attribute")
	}
	if got := doc.Accessors[posIdx].Count; got != cloud.PointCount() {
		t.Errorf("position accessor count = %d, want %d", got, cloud.PointCount())
	}
	if len(doc.Scenes) == 0 || len(doc.Scenes[0].Nodes) != 1 {
		t.Errorf("scene should reference the single node: %+v", doc.Scenes)
	}
}

func TestWriteGLB(t *testing.T) {
	tor := Torus{Major: 0.6, Minor: 0.2}
	cloud := tor.Sample(8)

	path := filepath.Join(t.TempDir(), "torus.glb")
	if err := WriteGLB(path, "torus", cloud); err != nil {
		t.Fatalf("WriteGLB failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("file is empty")
	}
}

func TestWriteGLBEmptyCloud(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.glb")
	if err := WriteGLB(path, "empty", NewPointCloud(nil)); err == nil {
		t.Fatal("expected an error for an empty cloud")
	}
}
