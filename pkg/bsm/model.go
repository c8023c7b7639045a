package bsm

import "fmt"

// Model holds every decoded section of a BSM file.
type Model struct {
	Header HeaderV1

	Positions []Position
	TexCoords []TexCoord
	Normals   []Normal
	Tangents  []Tangent
	Tris      []Triangle
	Meshes    []Mesh

	HullVerts []HullVert
	Hulls     []Hull

	VisVerts []VisVert
	VisTris  []VisTriangle
}

// Load validates data and decodes all of its sections into a new Model.
func Load(data []byte) (*Model, error) {
	m := &Model{}
	if err := ReadHeaderV1(data, &m.Header); err != nil {
		return nil, err
	}
	h := &m.Header

	m.Positions = make([]Position, h.NumVerts)
	m.TexCoords = make([]TexCoord, h.NumVerts)
	m.Normals = make([]Normal, h.NumVerts)
	m.Tangents = make([]Tangent, h.NumVerts)
	m.Tris = make([]Triangle, h.NumTris)
	m.Meshes = make([]Mesh, h.NumMeshes)
	m.HullVerts = make([]HullVert, h.NumHullVerts)
	m.Hulls = make([]Hull, h.NumHulls)
	m.VisVerts = make([]VisVert, h.NumVisVerts)
	m.VisTris = make([]VisTriangle, h.NumVisTris)

	steps := []struct {
		section Section
		read    func() error
	}{
		{SectionPositions, func() error { return ReadPositions(data, h, m.Positions) }},
		{SectionTexCoords, func() error { return ReadTexCoords(data, h, m.TexCoords) }},
		{SectionNormals, func() error { return ReadNormals(data, h, m.Normals) }},
		{SectionTangents, func() error { return ReadTangents(data, h, m.Tangents) }},
		{SectionTris, func() error { return ReadTris(data, h, m.Tris) }},
		{SectionMeshes, func() error { return ReadMeshes(data, h, m.Meshes) }},
		{SectionHullVerts, func() error { return ReadHullVerts(data, h, m.HullVerts) }},
		{SectionHulls, func() error { return ReadHulls(data, h, m.Hulls) }},
		{SectionVisVerts, func() error { return ReadVisVerts(data, h, m.VisVerts) }},
		{SectionVisTris, func() error { return ReadVisTris(data, h, m.VisTris) }},
	}
	for _, step := range steps {
		if err := step.read(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", step.section, err)
		}
	}

	return m, nil
}

// Transform maps model space into a unit sphere at the origin.
type Transform struct {
	Center [3]float32
	Scale  float32
}

// Transform returns the normalisation hint from the bounding sphere:
// translate by -center, then scale by 1/radius.
func (m *Model) Transform() Transform {
	s := m.Header.BSphere
	return Transform{
		Center: [3]float32{s.X, s.Y, s.Z},
		Scale:  1 / s.Radius,
	}
}

// Apply transforms a position.
func (t Transform) Apply(p Position) Position {
	return Position{
		X: (p.X - t.Center[0]) * t.Scale,
		Y: (p.Y - t.Center[1]) * t.Scale,
		Z: (p.Z - t.Center[2]) * t.Scale,
	}
}

// MeshTris returns the triangles drawn by mesh i, clamped to the
// triangle array.
func (m *Model) MeshTris(i int) []Triangle {
	first, count := m.Meshes[i].IdxTris, m.Meshes[i].NumTris
	return clampRun(m.Tris, first, count)
}

// HullVertices returns the vertices of hull i, clamped to the hull
// vertex array.
func (m *Model) HullVertices(i int) []HullVert {
	first, count := m.Hulls[i].IdxVert, m.Hulls[i].NumVert
	return clampRun(m.HullVerts, first, count)
}

// clampRun returns s[first:first+count] limited to the bounds of s.
func clampRun[T any](s []T, first, count int32) []T {
	lo := int64(first)
	hi := lo + int64(count)
	n := int64(len(s))
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		return nil
	}
	return s[lo:hi]
}

// Stats summarises index sanity across the model. The reader itself
// never validates indices.
type Stats struct {
	BadTriIndices    int // Triangle indices outside [0, NumVerts)
	BadVisTriIndices int // Visibility triangle indices outside [0, NumVisVerts)
	BadMeshRanges    int // Meshes whose triangle run leaves the triangle array
	BadHullRanges    int // Hulls whose vertex run leaves the hull vertex array
}

// OK reports whether no problems were found.
func (s Stats) OK() bool {
	return s == Stats{}
}

// Stats checks every index and run in the model against its target array.
func (m *Model) Stats() Stats {
	var st Stats
	for _, t := range m.Tris {
		st.BadTriIndices += countOutside(t.Index, len(m.Positions))
	}
	for _, t := range m.VisTris {
		st.BadVisTriIndices += countOutside(t.Index, len(m.VisVerts))
	}
	for _, mesh := range m.Meshes {
		if !runInside(mesh.IdxTris, mesh.NumTris, len(m.Tris)) {
			st.BadMeshRanges++
		}
	}
	for _, hull := range m.Hulls {
		if !runInside(hull.IdxVert, hull.NumVert, len(m.HullVerts)) {
			st.BadHullRanges++
		}
	}
	return st
}

func countOutside(idx [3]int32, n int) int {
	bad := 0
	for _, i := range idx {
		if i < 0 || int(i) >= n {
			bad++
		}
	}
	return bad
}

func runInside(first, count int32, n int) bool {
	return first >= 0 && count >= 0 && int64(first)+int64(count) <= int64(n)
}
