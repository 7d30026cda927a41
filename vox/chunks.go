package vox

import (
	"image/color"
	"log/slog"
)

func decodePack(c *cursor, b *builder) error {
	n, err := c.readUint32()
	if err != nil {
		return err
	}
	b.models = n
	return nil
}

func decodeSize(c *cursor, b *builder) error {
	var s Size
	var err error
	if s.X, err = c.readUint32(); err != nil {
		return err
	}
	if s.Y, err = c.readUint32(); err != nil {
		return err
	}
	if s.Z, err = c.readUint32(); err != nil {
		return err
	}
	b.sizeSlot().Size = &s
	return nil
}

func decodeXYZI(c *cursor, b *builder) error {
	num, err := c.readUint32()
	if err != nil {
		return err
	}
	// checked before allocating so a corrupt count cannot force a huge slice
	if uint64(num)*4 > uint64(c.remaining()) {
		return c.outOfBounds(4 * int(num))
	}
	f := b.voxelSlot()
	voxels := make([]Voxel, num)
	for i := range voxels {
		p := c.data[c.pos : c.pos+4]
		voxels[i] = Voxel{X: p[0], Y: p[1], Z: p[2], ColorIndex: p[3]}
		c.pos += 4
	}
	f.Voxels = voxels
	return nil
}

func decodeRGBA(c *cursor, b *builder, log *slog.Logger) error {
	var raw [256]color.RGBA
	for i := range raw {
		var q [4]byte
		for j := range q {
			v, err := c.next()
			if err != nil {
				return err
			}
			q[j] = v
		}
		raw[i] = color.RGBA{R: q[0], G: q[1], B: q[2], A: q[3]}
	}
	if b.palette != nil {
		log.Warn("ignoring extra RGBA chunk", "offset", c.base)
		return nil
	}
	b.palette = &raw
	return nil
}

func decodeMATT(c *cursor, b *builder) error {
	var fields [4]uint32
	for i := range fields {
		v, err := c.readUint32()
		if err != nil {
			return err
		}
		fields[i] = v
	}
	m := Material{
		ID:         fields[0],
		Type:       MaterialType(fields[1]),
		Weight:     decodeFloat(fields[2]),
		Properties: MaterialProperty(fields[3]),
	}
	for _, p := range valueProps {
		if !m.Has(p) {
			continue
		}
		raw, err := c.readUint32()
		if err != nil {
			return err
		}
		if m.Values == nil {
			m.Values = make(map[MaterialProperty]float32)
		}
		m.Values[p] = decodeFloat(raw)
	}
	b.materials = append(b.materials, m)
	return nil
}
