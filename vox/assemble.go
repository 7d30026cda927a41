package vox

import "image/color"

// builder owns everything the content decoders produce during one walk.
type builder struct {
	version   uint32
	frames    []Frame
	palette   *[256]color.RGBA
	materials []Material
	models    uint32
}

func newBuilder(version uint32) *builder {
	return &builder{version: version, frames: make([]Frame, 1)}
}

// sizeSlot returns the frame a SIZE chunk fills: the last one, or a new one
// when the last already has a size.
func (b *builder) sizeSlot() *Frame {
	if b.frames[len(b.frames)-1].Size != nil {
		b.frames = append(b.frames, Frame{})
	}
	return &b.frames[len(b.frames)-1]
}

// voxelSlot is sizeSlot for XYZI chunks, keyed on a non-empty voxel list.
func (b *builder) voxelSlot() *Frame {
	if len(b.frames[len(b.frames)-1].Voxels) != 0 {
		b.frames = append(b.frames, Frame{})
	}
	return &b.frames[len(b.frames)-1]
}

func (b *builder) finish() *Model {
	m := &Model{
		Version:   b.version,
		Frames:    b.frames,
		Materials: b.materials,
		Models:    b.models,
	}
	first := b.frames[0]
	if first.Size != nil {
		m.Size = *first.Size
	}
	m.Voxels = first.Voxels
	if b.palette == nil {
		m.Palette = defaultPalette
	} else {
		m.Palette = rotatePalette(b.palette)
		m.HasPalette = true
	}
	return m
}

// rotatePalette shifts the file palette right by one slot, duplicating entry
// 0 and dropping entry 255. Color indices in XYZI are 1-based against the
// stored table; after the shift Palette[ColorIndex] is the voxel's color.
func rotatePalette(raw *[256]color.RGBA) Palette {
	var p Palette
	p[0] = raw[0]
	copy(p[1:], raw[:255])
	return p
}
