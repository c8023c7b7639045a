package bsm

import "fmt"

// Section identifies one of the typed arrays that follow the header.
type Section int

// Sections in header order.
const (
	SectionPositions Section = iota
	SectionTexCoords
	SectionNormals
	SectionTangents
	SectionTris
	SectionMeshes
	SectionHullVerts
	SectionHulls
	SectionVisVerts
	SectionVisTris
)

// Sections lists every section in header order.
var Sections = []Section{
	SectionPositions,
	SectionTexCoords,
	SectionNormals,
	SectionTangents,
	SectionTris,
	SectionMeshes,
	SectionHullVerts,
	SectionHulls,
	SectionVisVerts,
	SectionVisTris,
}

// String returns the section name.
func (s Section) String() string {
	switch s {
	case SectionPositions:
		return "positions"
	case SectionTexCoords:
		return "texcoords"
	case SectionNormals:
		return "normals"
	case SectionTangents:
		return "tangents"
	case SectionTris:
		return "tris"
	case SectionMeshes:
		return "meshes"
	case SectionHullVerts:
		return "hullverts"
	case SectionHulls:
		return "hulls"
	case SectionVisVerts:
		return "visverts"
	case SectionVisTris:
		return "vistris"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ParseSection returns the section with the given name.
func ParseSection(name string) (Section, bool) {
	for _, s := range Sections {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// RecordSize returns the on-disk size of one record of the section.
func (s Section) RecordSize() int {
	switch s {
	case SectionPositions:
		return PositionSize
	case SectionTexCoords:
		return TexCoordSize
	case SectionNormals:
		return NormalSize
	case SectionTangents:
		return TangentSize
	case SectionTris:
		return TriangleSize
	case SectionMeshes:
		return MeshSize
	case SectionHullVerts:
		return HullVertSize
	case SectionHulls:
		return HullSize
	case SectionVisVerts:
		return VisVertSize
	case SectionVisTris:
		return VisTriangleSize
	default:
		panic(fmt.Sprintf("bsm: unknown section %d", int(s)))
	}
}

// Count returns the number of records the header declares for the section.
func (s Section) Count(h *HeaderV1) int32 {
	switch s {
	case SectionPositions, SectionTexCoords, SectionNormals, SectionTangents:
		return h.NumVerts
	case SectionTris:
		return h.NumTris
	case SectionMeshes:
		return h.NumMeshes
	case SectionHullVerts:
		return h.NumHullVerts
	case SectionHulls:
		return h.NumHulls
	case SectionVisVerts:
		return h.NumVisVerts
	case SectionVisTris:
		return h.NumVisTris
	default:
		panic(fmt.Sprintf("bsm: unknown section %d", int(s)))
	}
}

// Offset returns the byte offset the header declares for the section.
func (s Section) Offset(h *HeaderV1) int32 {
	switch s {
	case SectionPositions:
		return h.OffsPositions
	case SectionTexCoords:
		return h.OffsTexCoords
	case SectionNormals:
		return h.OffsNormals
	case SectionTangents:
		return h.OffsTangents
	case SectionTris:
		return h.OffsTris
	case SectionMeshes:
		return h.OffsMeshes
	case SectionHullVerts:
		return h.OffsHullVerts
	case SectionHulls:
		return h.OffsHulls
	case SectionVisVerts:
		return h.OffsVisVerts
	case SectionVisTris:
		return h.OffsVisTris
	default:
		panic(fmt.Sprintf("bsm: unknown section %d", int(s)))
	}
}

// Bytes returns count * record size for the section.
// The header is presumed to have passed ReadHeaderV1.
func (s Section) Bytes(h *HeaderV1) int {
	return int(s.Count(h)) * s.RecordSize()
}

// extent returns the section's [offs, end) byte range in int64, so that
// hostile counts cannot overflow on 32-bit platforms.
func (s Section) extent(h *HeaderV1) (offs, end int64) {
	offs = int64(s.Offset(h))
	return offs, offs + int64(s.Count(h))*int64(s.RecordSize())
}

// PositionsBytes returns the byte size of the positions section.
func PositionsBytes(h *HeaderV1) int { return SectionPositions.Bytes(h) }

// TexCoordsBytes returns the byte size of the texcoords section.
func TexCoordsBytes(h *HeaderV1) int { return SectionTexCoords.Bytes(h) }

// NormalsBytes returns the byte size of the normals section.
func NormalsBytes(h *HeaderV1) int { return SectionNormals.Bytes(h) }

// TangentsBytes returns the byte size of the tangents section.
func TangentsBytes(h *HeaderV1) int { return SectionTangents.Bytes(h) }

// TrisBytes returns the byte size of the triangles section.
func TrisBytes(h *HeaderV1) int { return SectionTris.Bytes(h) }

// MeshesBytes returns the byte size of the meshes section.
func MeshesBytes(h *HeaderV1) int { return SectionMeshes.Bytes(h) }

// HullVertsBytes returns the byte size of the hull vertices section.
func HullVertsBytes(h *HeaderV1) int { return SectionHullVerts.Bytes(h) }

// HullsBytes returns the byte size of the hulls section.
func HullsBytes(h *HeaderV1) int { return SectionHulls.Bytes(h) }

// VisVertsBytes returns the byte size of the visibility vertices section.
func VisVertsBytes(h *HeaderV1) int { return SectionVisVerts.Bytes(h) }

// VisTrisBytes returns the byte size of the visibility triangles section.
func VisTrisBytes(h *HeaderV1) int { return SectionVisTris.Bytes(h) }
