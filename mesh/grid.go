// Package mesh turns a decoded model into a triangle mesh with greedy face
// merging.
package mesh

import "github.com/voxelsplace/vox/vox"

// Grid is a dense block of color indices; 0 is empty.
type Grid struct {
	W, H, D int
	cells   []uint8
}

func NewGrid(w, h, d int) *Grid {
	return &Grid{W: w, H: h, D: d, cells: make([]uint8, w*h*d)}
}

// FromModel rasterizes the model's first frame. Voxels outside Size are
// dropped; when two voxels share a cell the later one wins.
func FromModel(m *vox.Model) *Grid {
	g := NewGrid(dim(m.Size.X), dim(m.Size.Y), dim(m.Size.Z))
	for _, v := range m.Voxels {
		g.Set(int(v.X), int(v.Y), int(v.Z), v.ColorIndex)
	}
	return g
}

// cells are addressed by uint8 coordinates, so nothing past 256 is reachable
func dim(n uint32) int {
	if n > 256 {
		return 256
	}
	return int(n)
}

func (g *Grid) in(x, y, z int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H && z >= 0 && z < g.D
}

// At returns 0 for coordinates outside the grid.
func (g *Grid) At(x, y, z int) uint8 {
	if !g.in(x, y, z) {
		return 0
	}
	return g.cells[x+y*g.W+z*g.W*g.H]
}

func (g *Grid) Set(x, y, z int, c uint8) {
	if g.in(x, y, z) {
		g.cells[x+y*g.W+z*g.W*g.H] = c
	}
}

// Count returns the number of non-empty cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c != 0 {
			n++
		}
	}
	return n
}
