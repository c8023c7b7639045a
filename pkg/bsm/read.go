package bsm

import "fmt"

// decoder is a record type that can decode itself from its on-disk bytes.
type decoder[T any] interface {
	*T
	decode(b []byte)
}

// readSection bounds-checks section s against data and decodes its
// records into out. A short out slice is a programmer error.
func readSection[T any, P decoder[T]](data []byte, h *HeaderV1, s Section, out []T) error {
	count := int(s.Count(h))
	offs, end := s.extent(h)
	if count < 0 || offs < 0 {
		return fmt.Errorf("%w: %s count %d offset %d", ErrNegativeField, s, count, offs)
	}
	if end > int64(len(data)) {
		return fmt.Errorf("%w: %s ends at %d, data is %d bytes", ErrChunkOutOfBounds, s, end, len(data))
	}
	if len(out) < count {
		panic(fmt.Sprintf("bsm: %s output holds %d records, need %d", s, len(out), count))
	}

	size := s.RecordSize()
	src := data[offs:end]
	for i := 0; i < count; i++ {
		P(&out[i]).decode(src[i*size : (i+1)*size])
	}
	return nil
}

// ReadPositions decodes the positions section into out.
func ReadPositions(data []byte, h *HeaderV1, out []Position) error {
	return readSection(data, h, SectionPositions, out)
}

// ReadTexCoords decodes the texture coordinates section into out.
func ReadTexCoords(data []byte, h *HeaderV1, out []TexCoord) error {
	return readSection(data, h, SectionTexCoords, out)
}

// ReadNormals decodes the normals section into out and rescales every
// normal to unit length. Zero-length normals become NaN.
func ReadNormals(data []byte, h *HeaderV1, out []Normal) error {
	if err := readSection(data, h, SectionNormals, out); err != nil {
		return err
	}
	for i := range out[:h.NumVerts] {
		normalizeNormal(&out[i])
	}
	return nil
}

// ReadTangents decodes the tangents section into out, rescales every
// (X, Y, Z) to unit length and snaps Handedness to +1 or -1.
func ReadTangents(data []byte, h *HeaderV1, out []Tangent) error {
	if err := readSection(data, h, SectionTangents, out); err != nil {
		return err
	}
	for i := range out[:h.NumVerts] {
		normalizeTangent(&out[i])
	}
	return nil
}

// ReadTris decodes the triangles section into out. Indices are not
// checked against the vertex count.
func ReadTris(data []byte, h *HeaderV1, out []Triangle) error {
	return readSection(data, h, SectionTris, out)
}

// ReadMeshes decodes the meshes section into out.
func ReadMeshes(data []byte, h *HeaderV1, out []Mesh) error {
	return readSection(data, h, SectionMeshes, out)
}

// ReadHullVerts decodes the hull vertices section into out.
func ReadHullVerts(data []byte, h *HeaderV1, out []HullVert) error {
	return readSection(data, h, SectionHullVerts, out)
}

// ReadHulls decodes the hulls section into out.
func ReadHulls(data []byte, h *HeaderV1, out []Hull) error {
	return readSection(data, h, SectionHulls, out)
}

// ReadVisVerts decodes the visibility vertices section into out.
func ReadVisVerts(data []byte, h *HeaderV1, out []VisVert) error {
	return readSection(data, h, SectionVisVerts, out)
}

// ReadVisTris decodes the visibility triangles section into out.
func ReadVisTris(data []byte, h *HeaderV1, out []VisTriangle) error {
	return readSection(data, h, SectionVisTris, out)
}
