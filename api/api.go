package api

import (
	"bytes"
	"context"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/voxelsplace/vox/mesh"
	"github.com/voxelsplace/vox/source"
	"github.com/voxelsplace/vox/vox"
)

// Parse fetches locator (a path or an http(s) URL), strips any compression
// and decodes it. Fetch failures come back as *source.Error, decode failures
// as *vox.DecodeError.
func Parse(ctx context.Context, locator string, opts ...vox.Option) (*vox.Model, error) {
	return ParseFrom(ctx, source.Auto{}, locator, opts...)
}

// ParseFrom is Parse with an explicit byte source.
func ParseFrom(ctx context.Context, src source.Source, locator string, opts ...vox.Option) (*vox.Model, error) {
	b, err := source.Load(ctx, src, locator)
	if err != nil {
		return nil, err
	}
	m, err := vox.Decode(b, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", locator, err)
	}
	return m, nil
}

// VOXToGLB takes .vox file bytes and returns a .glb of the first frame.
func VOXToGLB(voxBytes []byte, opts ...vox.Option) ([]byte, error) {
	m, err := vox.Decode(voxBytes, opts...)
	if err != nil {
		return nil, err
	}
	return ModelToGLB(m)
}

// ModelToGLB meshes m and encodes it as binary glTF. Files are z-up, glTF is
// y-up: (x, y, z) becomes (x, z, -y).
func ModelToGLB(m *vox.Model) ([]byte, error) {
	msh := mesh.GenerateMesh(mesh.FromModel(m))
	if len(msh.Vertices) == 0 {
		return nil, fmt.Errorf("model has no visible voxels")
	}

	positions := make([][3]float32, len(msh.Vertices))
	normals := make([][3]float32, len(msh.Vertices))
	colors := make([][4]float32, len(msh.Vertices))
	hasAlpha := false
	for i, v := range msh.Vertices {
		positions[i] = yUp(v.Position)
		normals[i] = yUp(v.Normal)
		c := m.Palette[v.Color]
		colors[i] = [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
		if c.A < 255 {
			hasAlpha = true
		}
	}
	indices := make([]uint32, len(msh.Indices))
	copy(indices, msh.Indices)

	doc := gltf.NewDocument()
	doc.Asset.Generator = "VOX -> GLB"
	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, colors)
	indicesAccessor := modeler.WriteIndices(doc, indices)
	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(posAccessor),
			gltf.NORMAL:   uint32(normalAccessor),
			gltf.COLOR_0:  uint32(colorAccessor),
		},
		Indices: gltf.Index(uint32(indicesAccessor)),
	}
	pbr := &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float32{1, 1, 1, 1}, MetallicFactor: gltf.Float(0), RoughnessFactor: gltf.Float(1)}
	material := &gltf.Material{PBRMetallicRoughness: pbr}
	if hasAlpha {
		material.AlphaMode = gltf.AlphaBlend
	} else {
		material.AlphaMode = gltf.AlphaOpaque
	}
	doc.Materials = []*gltf.Material{material}
	prim.Material = gltf.Index(0)
	doc.Meshes = []*gltf.Mesh{{Name: "VoxModel", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))

	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func yUp(p [3]float32) [3]float32 {
	return [3]float32{p[0], p[2], -p[1]}
}
