package mesh

// Vertex is one quad corner. Color is the palette index of the face.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    uint8
}

// Mesh is an indexed triangle list, two triangles per quad, counter-clockwise
// when seen from outside.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Quads returns the number of merged faces.
func (m *Mesh) Quads() int { return len(m.Indices) / 6 }

type faceDir struct {
	normal [3]float32
	u, v   int
}

var faceDirs = []faceDir{
	{[3]float32{1, 0, 0}, 1, 2},
	{[3]float32{-1, 0, 0}, 1, 2},
	{[3]float32{0, 1, 0}, 0, 2},
	{[3]float32{0, -1, 0}, 0, 2},
	{[3]float32{0, 0, 1}, 0, 1},
	{[3]float32{0, 0, -1}, 0, 1},
}

func addQuad(m *Mesh, dir faceDir, perp, p, u, v, h, w int, color uint8) {
	var base [3]float32
	base[perp] = float32(p)
	if dir.normal[perp] > 0 {
		base[perp]++
	}
	base[dir.u] = float32(u)
	base[dir.v] = float32(v)

	c1, c2, c3 := base, base, base
	c1[dir.u] += float32(h)
	c2[dir.u] += float32(h)
	c2[dir.v] += float32(w)
	c3[dir.v] += float32(w)

	verts := [4]Vertex{
		{Position: base, Normal: dir.normal, Color: color},
		{Position: c1, Normal: dir.normal, Color: color},
		{Position: c2, Normal: dir.normal, Color: color},
		{Position: c3, Normal: dir.normal, Color: color},
	}
	// u×v points along +x and +z but along -y, flip where that disagrees
	// with the face normal
	if (dir.normal[perp] < 0) != (perp == 1) {
		verts[1], verts[3] = verts[3], verts[1]
	}

	n := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, verts[:]...)
	m.Indices = append(m.Indices, n, n+1, n+2, n, n+2, n+3)
}

// GenerateMesh emits the exposed faces of g, merging same-colored coplanar
// neighbours into rectangles.
func GenerateMesh(g *Grid) *Mesh {
	m := &Mesh{}
	dims := [3]int{g.W, g.H, g.D}

	for _, dir := range faceDirs {
		perp := 3 - dir.u - dir.v
		nu, nv := dims[dir.u], dims[dir.v]
		mask := make([]uint8, nu*nv)
		visited := make([]bool, nu*nv)

		for p := 0; p < dims[perp]; p++ {
			clear(mask)
			clear(visited)
			for u := 0; u < nu; u++ {
				for v := 0; v < nv; v++ {
					var pos [3]int
					pos[dir.u], pos[dir.v], pos[perp] = u, v, p
					c := g.At(pos[0], pos[1], pos[2])
					if c == 0 {
						continue
					}
					adj := pos
					if dir.normal[perp] < 0 {
						adj[perp]--
					} else {
						adj[perp]++
					}
					if g.At(adj[0], adj[1], adj[2]) == 0 {
						mask[u*nv+v] = c
					}
				}
			}

			for u := 0; u < nu; u++ {
				for v := 0; v < nv; {
					c := mask[u*nv+v]
					if c == 0 || visited[u*nv+v] {
						v++
						continue
					}
					w := 1
					for v+w < nv && mask[u*nv+v+w] == c && !visited[u*nv+v+w] {
						w++
					}
					h := 1
				grow:
					for u+h < nu {
						for k := v; k < v+w; k++ {
							if mask[(u+h)*nv+k] != c || visited[(u+h)*nv+k] {
								break grow
							}
						}
						h++
					}
					for hu := u; hu < u+h; hu++ {
						for hv := v; hv < v+w; hv++ {
							visited[hu*nv+hv] = true
						}
					}
					addQuad(m, dir, perp, p, u, v, h, w, c)
					v += w
				}
			}
		}
	}
	return m
}
