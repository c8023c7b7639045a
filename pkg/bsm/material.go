package bsm

import "bytes"

// MaterialBytes returns the material tag in file byte order, undoing
// the per-word reorder applied when the mesh was decoded.
func (m *Mesh) MaterialBytes() [MaterialSize]byte {
	var raw [MaterialSize]byte
	for i := 0; i < MaterialSize; i += 4 {
		w := hostOrder.Uint32(m.Material[i:])
		raw[i] = byte(w)
		raw[i+1] = byte(w >> 8)
		raw[i+2] = byte(w >> 16)
		raw[i+3] = byte(w >> 24)
	}
	return raw
}

// MaterialName returns the material tag as a string, cut at the first
// NUL. Exporters pad the tag with zeros but the format does not require
// a terminator, so a full 256-byte tag is returned whole.
func (m *Mesh) MaterialName() string {
	raw := m.MaterialBytes()
	if i := bytes.IndexByte(raw[:], 0); i >= 0 {
		return string(raw[:i])
	}
	return string(raw[:])
}
