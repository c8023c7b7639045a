package bsm

// BSphere is the model's bounding sphere.
type BSphere struct {
	X, Y, Z float32
	Radius  float32
}

// BBox is the model's axis-aligned bounding box. The reader does not
// check that the min corner is below the max corner.
type BBox struct {
	X0, Y0, Z0 float32 // Min corner
	X1, Y1, Z1 float32 // Max corner
}

// HeaderV1 is the decoded 132-byte v1 file header.
// Positions, texture coordinates, normals and tangents share NumVerts.
type HeaderV1 struct {
	Magic     [4]int32
	Version   int32 // Nominally 1, not checked
	Extension int32 // Reserved for superset headers, not checked
	BSphere   BSphere
	BBox      BBox

	NumVerts      int32
	OffsPositions int32
	OffsTexCoords int32
	OffsNormals   int32
	OffsTangents  int32

	NumTris  int32
	OffsTris int32

	NumMeshes  int32
	OffsMeshes int32

	NumHullVerts  int32
	OffsHullVerts int32

	NumHulls  int32
	OffsHulls int32

	NumVisVerts  int32
	OffsVisVerts int32

	NumVisTris  int32
	OffsVisTris int32
}

// Position is a vertex position.
type Position struct {
	X, Y, Z float32
}

// TexCoord is a vertex texture coordinate.
type TexCoord struct {
	U, V float32
}

// Normal is a vertex normal. Decoded normals have unit length.
type Normal struct {
	X, Y, Z float32
}

// Tangent is a vertex tangent. Decoded tangents have a unit (X, Y, Z)
// and a Handedness of exactly +1 or -1.
type Tangent struct {
	X, Y, Z    float32
	Handedness float32
}

// Triangle indexes the parallel vertex arrays.
type Triangle struct {
	Index [3]int32
}

// Mesh is a run of triangles drawn with one material.
type Mesh struct {
	IdxTris  int32 // First triangle
	NumTris  int32 // Triangle count
	Material [MaterialSize]byte
}

// HullVert is a collision hull vertex.
type HullVert struct {
	X, Y, Z float32
}

// Hull is a convex collision hull: a contiguous run of hull vertices.
type Hull struct {
	IdxVert int32 // First hull vertex
	NumVert int32 // Hull vertex count
}

// VisVert is a visibility mesh vertex.
type VisVert struct {
	X, Y, Z float32
}

// VisTriangle indexes the visibility vertex array.
type VisTriangle struct {
	Index [3]int32
}

func (p *Position) decode(b []byte) {
	p.X, p.Y, p.Z = wordF32(b, 0), wordF32(b, 1), wordF32(b, 2)
}

func (t *TexCoord) decode(b []byte) {
	t.U, t.V = wordF32(b, 0), wordF32(b, 1)
}

func (n *Normal) decode(b []byte) {
	n.X, n.Y, n.Z = wordF32(b, 0), wordF32(b, 1), wordF32(b, 2)
}

func (t *Tangent) decode(b []byte) {
	t.X, t.Y, t.Z = wordF32(b, 0), wordF32(b, 1), wordF32(b, 2)
	t.Handedness = wordF32(b, 3)
}

func (t *Triangle) decode(b []byte) {
	t.Index = [3]int32{wordI32(b, 0), wordI32(b, 1), wordI32(b, 2)}
}

// decode copies the material through the word reorder, so on a
// big-endian host each 4-byte group of the tag comes out reversed.
func (m *Mesh) decode(b []byte) {
	m.IdxTris = wordI32(b, 0)
	m.NumTris = wordI32(b, 1)
	reorderCopy32(m.Material[:], b[8:8+MaterialSize])
}

func (v *HullVert) decode(b []byte) {
	v.X, v.Y, v.Z = wordF32(b, 0), wordF32(b, 1), wordF32(b, 2)
}

func (h *Hull) decode(b []byte) {
	h.IdxVert, h.NumVert = wordI32(b, 0), wordI32(b, 1)
}

func (v *VisVert) decode(b []byte) {
	v.X, v.Y, v.Z = wordF32(b, 0), wordF32(b, 1), wordF32(b, 2)
}

func (t *VisTriangle) decode(b []byte) {
	t.Index = [3]int32{wordI32(b, 0), wordI32(b, 1), wordI32(b, 2)}
}
