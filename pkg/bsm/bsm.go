// Package bsm reads Binary Static Mesh (BSM) v1 files.
//
// A BSM file is a fixed 132-byte header followed by ten tightly packed,
// independently located arrays: positions, texture coordinates, normals,
// tangents, triangles, meshes, hull vertices, hulls, visibility vertices
// and visibility triangles. Every 32-bit field on disk is little-endian.
//
// The reader is stateless. Callers decode the header with ReadHeaderV1,
// size their output slices with the *Bytes / Count helpers, and then call
// one Read* function per section. Nothing in the read path allocates or
// logs; Load is a convenience that allocates a whole Model.
package bsm

import "errors"

// BSM format errors.
var (
	ErrTruncatedHeader  = errors.New("truncated BSM header")
	ErrInvalidMagic     = errors.New("invalid BSM magic: expected 'BINARYSTATICMESH'")
	ErrNegativeField    = errors.New("negative BSM count or offset")
	ErrChunkOutOfBounds = errors.New("BSM chunk extends past end of data")
	ErrChunkOverlap     = errors.New("overlapping BSM chunks")
)

// "BINARYSTATICMESH" read as four little-endian 32-bit words.
const (
	magic0 int32 = 0x414E4942
	magic1 int32 = 0x54535952
	magic2 int32 = 0x43495441
	magic3 int32 = 0x4853454D
)

// Magic is the file signature, for callers that write headers.
// ReadHeaderV1 checks against its own constants, so changing Magic has no
// effect on which files are accepted.
var Magic = [4]int32{magic0, magic1, magic2, magic3}

// Version is the nominal header version written by exporters.
// The reader does not check it.
const Version = 1

// IsValid reports whether data holds a structurally valid BSM v1 file.
func IsValid(data []byte) bool {
	var h HeaderV1
	return ReadHeaderV1(data, &h) == nil
}
