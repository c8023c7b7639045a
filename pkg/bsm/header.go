package bsm

import "fmt"

// headerField names one count or offset word of the header.
type headerField struct {
	name  string
	value int32
}

// ReadHeaderV1 decodes and validates the v1 header at the start of data.
//
// It fails when data is shorter than a header, when the magic does not
// match, when any count or offset is negative, or when any section would
// extend past the end of data. Overlapping sections, the version tag and
// the bounding volumes are not checked. On failure h is left partially
// written.
func ReadHeaderV1(data []byte, h *HeaderV1) error {
	if len(data) < HeaderV1Size {
		return fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, len(data))
	}

	h.decode(data[:HeaderV1Size])

	if h.Magic != [4]int32{magic0, magic1, magic2, magic3} {
		return ErrInvalidMagic
	}

	for _, f := range h.fields() {
		if f.value < 0 {
			return fmt.Errorf("%w: %s = %d", ErrNegativeField, f.name, f.value)
		}
	}

	n := int64(len(data))
	for _, s := range Sections {
		if _, end := s.extent(h); end > n {
			return fmt.Errorf("%w: %s ends at %d, data is %d bytes", ErrChunkOutOfBounds, s, end, n)
		}
	}

	return nil
}

func (h *HeaderV1) decode(b []byte) {
	for i := range h.Magic {
		h.Magic[i] = wordI32(b, i)
	}
	h.Version = wordI32(b, 4)
	h.Extension = wordI32(b, 5)

	h.BSphere = BSphere{
		X:      wordF32(b, 6),
		Y:      wordF32(b, 7),
		Z:      wordF32(b, 8),
		Radius: wordF32(b, 9),
	}
	h.BBox = BBox{
		X0: wordF32(b, 10), Y0: wordF32(b, 11), Z0: wordF32(b, 12),
		X1: wordF32(b, 13), Y1: wordF32(b, 14), Z1: wordF32(b, 15),
	}

	h.NumVerts = wordI32(b, 16)
	h.OffsPositions = wordI32(b, 17)
	h.OffsTexCoords = wordI32(b, 18)
	h.OffsNormals = wordI32(b, 19)
	h.OffsTangents = wordI32(b, 20)
	h.NumTris = wordI32(b, 21)
	h.OffsTris = wordI32(b, 22)
	h.NumMeshes = wordI32(b, 23)
	h.OffsMeshes = wordI32(b, 24)
	h.NumHullVerts = wordI32(b, 25)
	h.OffsHullVerts = wordI32(b, 26)
	h.NumHulls = wordI32(b, 27)
	h.OffsHulls = wordI32(b, 28)
	h.NumVisVerts = wordI32(b, 29)
	h.OffsVisVerts = wordI32(b, 30)
	h.NumVisTris = wordI32(b, 31)
	h.OffsVisTris = wordI32(b, 32)
}

// fields returns the count and offset words in on-disk order.
func (h *HeaderV1) fields() [17]headerField {
	return [17]headerField{
		{"num_verts", h.NumVerts},
		{"offs_positions", h.OffsPositions},
		{"offs_texcoords", h.OffsTexCoords},
		{"offs_normals", h.OffsNormals},
		{"offs_tangents", h.OffsTangents},
		{"num_tris", h.NumTris},
		{"offs_tris", h.OffsTris},
		{"num_meshes", h.NumMeshes},
		{"offs_meshes", h.OffsMeshes},
		{"num_hullverts", h.NumHullVerts},
		{"offs_hullverts", h.OffsHullVerts},
		{"num_hulls", h.NumHulls},
		{"offs_hulls", h.OffsHulls},
		{"num_visverts", h.NumVisVerts},
		{"offs_visverts", h.OffsVisVerts},
		{"num_vistris", h.NumVisTris},
		{"offs_vistris", h.OffsVisTris},
	}
}

// FileSize returns the smallest file length that holds the header and
// every section it declares.
func (h *HeaderV1) FileSize() int64 {
	size := int64(HeaderV1Size)
	for _, s := range Sections {
		if _, end := s.extent(h); end > size {
			size = end
		}
	}
	return size
}
