package vox

import (
	"encoding/binary"
	"image/color"

	xxhash "github.com/cespare/xxhash/v2"
)

// Size is the bounding box of a model in voxels.
type Size struct {
	X, Y, Z uint32
}

// Voxel is a single cell. ColorIndex addresses Model.Palette.
type Voxel struct {
	X, Y, Z    uint8
	ColorIndex uint8
}

// Frame is one SIZE/XYZI pair. Size is nil until a SIZE chunk fills it.
type Frame struct {
	Size   *Size
	Voxels []Voxel
}

// MaterialType is the shading model of a MATT chunk.
type MaterialType uint32

const (
	MaterialDiffuse MaterialType = iota
	MaterialMetal
	MaterialGlass
	MaterialEmissive
)

func (t MaterialType) String() string {
	switch t {
	case MaterialDiffuse:
		return "diffuse"
	case MaterialMetal:
		return "metal"
	case MaterialGlass:
		return "glass"
	case MaterialEmissive:
		return "emissive"
	default:
		return "unknown"
	}
}

// MaterialProperty is one bit of the MATT property set.
type MaterialProperty uint32

const (
	PropPlastic MaterialProperty = 1 << iota
	PropRoughness
	PropSpecular
	PropIOR
	PropAttenuation
	PropPower
	PropGlow
	PropTotalPower // flag only, no value follows
)

// valueProps lists the properties that carry a trailing float, in file order.
var valueProps = [...]MaterialProperty{
	PropPlastic, PropRoughness, PropSpecular, PropIOR, PropAttenuation, PropPower, PropGlow,
}

var propNames = map[MaterialProperty]string{
	PropPlastic:     "plastic",
	PropRoughness:   "roughness",
	PropSpecular:    "specular",
	PropIOR:         "ior",
	PropAttenuation: "attenuation",
	PropPower:       "power",
	PropGlow:        "glow",
	PropTotalPower:  "isTotalPower",
}

func (p MaterialProperty) String() string {
	if n, ok := propNames[p]; ok {
		return n
	}
	return "unknown"
}

// Material is a decoded MATT chunk.
type Material struct {
	ID         uint32
	Type       MaterialType
	Weight     float32
	Properties MaterialProperty
	Values     map[MaterialProperty]float32
}

// Has reports whether p is set on the material.
func (m Material) Has(p MaterialProperty) bool { return m.Properties&p != 0 }

// Model is the decoded file. Size and Voxels come from the first frame; the
// full animation sequence is kept in Frames.
type Model struct {
	Version uint32
	Size    Size
	Voxels  []Voxel
	Palette Palette
	// HasPalette is false when Palette is the built-in default.
	HasPalette bool
	Frames     []Frame
	Materials  []Material
	// Models is the PACK count, 0 when the file has no PACK chunk.
	Models uint32
}

// Color returns the palette entry a voxel refers to.
func (m *Model) Color(v Voxel) color.RGBA { return m.Palette[v.ColorIndex] }

// Digest hashes size, voxels and palette of the public model.
func (m *Model) Digest() uint64 {
	h := xxhash.New()
	var b [12]byte
	binary.LittleEndian.PutUint32(b[0:], m.Size.X)
	binary.LittleEndian.PutUint32(b[4:], m.Size.Y)
	binary.LittleEndian.PutUint32(b[8:], m.Size.Z)
	_, _ = h.Write(b[:])
	for _, v := range m.Voxels {
		_, _ = h.Write([]byte{v.X, v.Y, v.Z, v.ColorIndex})
	}
	for _, c := range m.Palette {
		_, _ = h.Write([]byte{c.R, c.G, c.B, c.A})
	}
	return h.Sum64()
}
