package bsm

import (
	"encoding/binary"
	"fmt"
	"math"
)

// hostOrder is the byte order that reorderCopy32 stores words in.
// It is only reassigned by tests emulating a big-endian host.
var hostOrder binary.ByteOrder = binary.NativeEndian

// reorderCopy32 copies src into dst as a run of 32-bit words, converting
// each word from little-endian to host order. src and dst must not alias.
func reorderCopy32(dst, src []byte) {
	if len(src)%4 != 0 {
		panic(fmt.Sprintf("bsm: reorderCopy32 of %d bytes, not a multiple of 4", len(src)))
	}
	if len(dst) < len(src) {
		panic(fmt.Sprintf("bsm: reorderCopy32 into %d bytes, need %d", len(dst), len(src)))
	}
	for i := 0; i < len(src); i += 4 {
		hostOrder.PutUint32(dst[i:], binary.LittleEndian.Uint32(src[i:]))
	}
}

// word returns the i-th little-endian 32-bit word of b.
func word(b []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(b[4*i:])
}

func wordI32(b []byte, i int) int32 {
	return int32(word(b, i))
}

func wordF32(b []byte, i int) float32 {
	return math.Float32frombits(word(b, i))
}
