package bsm

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// testFile assembles a little-endian BSM image section by section.
type testFile struct {
	h    HeaderV1
	body bytes.Buffer
}

func newTestFile() *testFile {
	f := &testFile{}
	f.h.Magic = Magic
	f.h.Version = Version
	return f
}

// put appends records for section s and points the header at them.
func (f *testFile) put(s Section, count int32, records any) *testFile {
	offs := int32(HeaderV1Size + f.body.Len())
	setSection(&f.h, s, count, offs)
	binary.Write(&f.body, binary.LittleEndian, records)
	return f
}

func (f *testFile) bytes() []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, f.h)
	buf.Write(f.body.Bytes())
	return buf.Bytes()
}

func setSection(h *HeaderV1, s Section, count, offs int32) {
	switch s {
	case SectionPositions:
		h.NumVerts, h.OffsPositions = count, offs
	case SectionTexCoords:
		h.NumVerts, h.OffsTexCoords = count, offs
	case SectionNormals:
		h.NumVerts, h.OffsNormals = count, offs
	case SectionTangents:
		h.NumVerts, h.OffsTangents = count, offs
	case SectionTris:
		h.NumTris, h.OffsTris = count, offs
	case SectionMeshes:
		h.NumMeshes, h.OffsMeshes = count, offs
	case SectionHullVerts:
		h.NumHullVerts, h.OffsHullVerts = count, offs
	case SectionHulls:
		h.NumHulls, h.OffsHulls = count, offs
	case SectionVisVerts:
		h.NumVisVerts, h.OffsVisVerts = count, offs
	case SectionVisTris:
		h.NumVisTris, h.OffsVisTris = count, offs
	}
}

// createScenarioA builds the minimal one-vertex, one-triangle file.
func createScenarioA() []byte {
	return newTestFile().
		put(SectionPositions, 1, Position{1, 2, 3}).
		put(SectionTexCoords, 1, TexCoord{0.25, 0.5}).
		put(SectionNormals, 1, Normal{0, 0, 2}).
		put(SectionTangents, 1, Tangent{3, 0, 0, -0.5}).
		put(SectionTris, 1, Triangle{[3]int32{0, 0, 0}}).
		bytes()
}

func material(name string) [MaterialSize]byte {
	var m [MaterialSize]byte
	copy(m[:], name)
	return m
}

// createFullTestFile builds a file with two records in every section.
func createFullTestFile() []byte {
	return newTestFile().
		put(SectionPositions, 2, []Position{{1, 2, 3}, {-4, 5.5, 6}}).
		put(SectionTexCoords, 2, []TexCoord{{0, 1}, {0.5, 0.75}}).
		put(SectionNormals, 2, []Normal{{0, 3, 0}, {1, 1, 0}}).
		put(SectionTangents, 2, []Tangent{{2, 0, 0, 7}, {0, 0, -5, -3}}).
		put(SectionTris, 2, []Triangle{{[3]int32{0, 1, 0}}, {[3]int32{1, 0, 1}}}).
		put(SectionMeshes, 2, []Mesh{
			{IdxTris: 0, NumTris: 1, Material: material("stone")},
			{IdxTris: 1, NumTris: 1, Material: material("textures/wood_planks")},
		}).
		put(SectionHullVerts, 2, []HullVert{{-1, -1, -1}, {1, 1, 1}}).
		put(SectionHulls, 2, []Hull{{0, 1}, {1, 1}}).
		put(SectionVisVerts, 2, []VisVert{{0, 0, 0}, {0, 10, 0}}).
		put(SectionVisTris, 2, []VisTriangle{{[3]int32{0, 1, 1}}, {[3]int32{1, 0, 0}}}).
		bytes()
}

// asBigEndianHost makes reorderCopy32 store words big-endian for the
// rest of the test.
func asBigEndianHost(t *testing.T) {
	t.Helper()
	prev := hostOrder
	hostOrder = binary.BigEndian
	t.Cleanup(func() { hostOrder = prev })
}

// readAll decodes section s of data with the matching reader, allocating
// the output from the header count.
func readAll(data []byte, h *HeaderV1, s Section) error {
	n := s.Count(h)
	if n < 0 {
		n = 0
	}
	switch s {
	case SectionPositions:
		return ReadPositions(data, h, make([]Position, n))
	case SectionTexCoords:
		return ReadTexCoords(data, h, make([]TexCoord, n))
	case SectionNormals:
		return ReadNormals(data, h, make([]Normal, n))
	case SectionTangents:
		return ReadTangents(data, h, make([]Tangent, n))
	case SectionTris:
		return ReadTris(data, h, make([]Triangle, n))
	case SectionMeshes:
		return ReadMeshes(data, h, make([]Mesh, n))
	case SectionHullVerts:
		return ReadHullVerts(data, h, make([]HullVert, n))
	case SectionHulls:
		return ReadHulls(data, h, make([]Hull, n))
	case SectionVisVerts:
		return ReadVisVerts(data, h, make([]VisVert, n))
	case SectionVisTris:
		return ReadVisTris(data, h, make([]VisTriangle, n))
	}
	panic("unknown section")
}
