package mesh

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// buildDocument packs the cloud into a glTF document holding a single mesh
// with one POINTS primitive.
func buildDocument(name string, c *PointCloud) *gltf.Document {
	positions := make([][3]float32, c.PointCount())
	for i := range positions {
		p := c.Point(i)
		positions[i] = [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}
	}

	doc := gltf.NewDocument()
	posAccessor := modeler.WritePosition(doc, positions)
	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]int{gltf.POSITION: posAccessor},
			Mode:       gltf.PrimitivePoints,
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

// WriteGLB writes the cloud to path as a binary glTF (.glb) point cloud.
func WriteGLB(path, name string, c *PointCloud) error {
	if c.PointCount() == 0 {
		return fmt.Errorf("refusing to export an empty point cloud")
	}
	if err := gltf.SaveBinary(buildDocument(name, c), path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}
