package vox

import (
	"encoding/binary"
	"math"
)

func u32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// chunk encodes a chunk with correct content and children lengths.
func chunk(id string, content []byte, children ...[]byte) []byte {
	kids := cat(children...)
	return cat([]byte(id), u32(uint32(len(content))), u32(uint32(len(kids))), content, kids)
}

func file(root []byte) []byte {
	return cat([]byte("VOX "), u32(150), root)
}

func sizeChunk(x, y, z uint32) []byte {
	return chunk("SIZE", cat(u32(x), u32(y), u32(z)))
}

func xyziChunk(vs ...Voxel) []byte {
	content := u32(uint32(len(vs)))
	for _, v := range vs {
		content = append(content, v.X, v.Y, v.Z, v.ColorIndex)
	}
	return chunk("XYZI", content)
}

func rgbaChunk(fill func(i int) [4]byte) []byte {
	content := make([]byte, 0, 1024)
	for i := 0; i < 256; i++ {
		q := fill(i)
		content = append(content, q[:]...)
	}
	return chunk("RGBA", content)
}

func f32(v float32) uint32 { return math.Float32bits(v) }
