package api

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/require"

	"github.com/voxelsplace/vox/source"
	"github.com/voxelsplace/vox/vox"
)

func chunk(id string, content []byte, children ...[]byte) []byte {
	var kids []byte
	for _, c := range children {
		kids = append(kids, c...)
	}
	out := []byte(id)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(content)))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(kids)))
	out = append(out, content...)
	return append(out, kids...)
}

func voxFile(size [3]uint32, vs ...vox.Voxel) []byte {
	var sz []byte
	for _, n := range size {
		sz = binary.LittleEndian.AppendUint32(sz, n)
	}
	xyzi := binary.LittleEndian.AppendUint32(nil, uint32(len(vs)))
	for _, v := range vs {
		xyzi = append(xyzi, v.X, v.Y, v.Z, v.ColorIndex)
	}
	buf := append([]byte("VOX "), 150, 0, 0, 0)
	return append(buf, chunk("MAIN", nil, chunk("SIZE", sz), chunk("XYZI", xyzi))...)
}

func TestVOXToGLB(t *testing.T) {
	out, err := VOXToGLB(voxFile([3]uint32{2, 2, 2}, vox.Voxel{X: 1, Y: 1, Z: 0, ColorIndex: 5}))
	require.NoError(t, err)
	require.Equal(t, []byte("glTF"), out[:4])

	var doc gltf.Document
	require.NoError(t, gltf.NewDecoder(bytes.NewReader(out)).Decode(&doc))
	require.Len(t, doc.Meshes, 1)
	require.Len(t, doc.Nodes, 1)
	prim := doc.Meshes[0].Primitives[0]
	pos := doc.Accessors[prim.Attributes[gltf.POSITION]]
	require.EqualValues(t, 24, pos.Count)
	require.Equal(t, gltf.AlphaOpaque, doc.Materials[0].AlphaMode)
}

func TestVOXToGLBErrors(t *testing.T) {
	_, err := VOXToGLB([]byte("NOPE1234"))
	require.ErrorIs(t, err, vox.ErrBadMagic)

	_, err = VOXToGLB(voxFile([3]uint32{4, 4, 4}))
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	plain := voxFile([3]uint32{3, 1, 1}, vox.Voxel{ColorIndex: 1}, vox.Voxel{X: 2, ColorIndex: 2})
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	packed := enc.EncodeAll(plain, nil)

	dir := t.TempDir()
	path := filepath.Join(dir, "model.vox.zst")
	require.NoError(t, os.WriteFile(path, packed, 0o644))

	m, err := Parse(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, vox.Size{X: 3, Y: 1, Z: 1}, m.Size)
	require.Len(t, m.Voxels, 2)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.vox":
			_, _ = w.Write(plain)
		case "/junk.vox":
			_, _ = w.Write([]byte("VOX \x01\x00"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	remote, err := Parse(context.Background(), srv.URL+"/ok.vox")
	require.NoError(t, err)
	require.Equal(t, m.Digest(), remote.Digest())

	_, err = Parse(context.Background(), srv.URL+"/missing.vox")
	var se *source.Error
	require.True(t, errors.As(err, &se))
	var de *vox.DecodeError
	require.False(t, errors.As(err, &de))

	_, err = Parse(context.Background(), srv.URL+"/junk.vox")
	require.ErrorIs(t, err, vox.ErrOutOfBounds)
	require.False(t, errors.As(err, &se))
}

func TestSummarize(t *testing.T) {
	m, err := vox.Decode(voxFile([3]uint32{4, 5, 6},
		vox.Voxel{ColorIndex: 3}, vox.Voxel{X: 1, ColorIndex: 3}, vox.Voxel{X: 2, ColorIndex: 8}))
	require.NoError(t, err)

	s := Summarize(m)
	require.Equal(t, [3]uint32{4, 5, 6}, s.Size)
	require.Equal(t, 3, s.Voxels)
	require.Equal(t, 2, s.Colors)
	require.Equal(t, "default", s.Palette)
	require.Len(t, s.Frames, 1)
	require.Equal(t, []uint32{4, 5, 6}, s.Frames[0].Size)
	require.Len(t, s.Digest, 16)
}
