package bsm

import "unsafe"

// On-disk record sizes in bytes.
const (
	HeaderV1Size    = 0x84
	BSphereSize     = 0x10
	BBoxSize        = 0x18
	PositionSize    = 0x0C
	TexCoordSize    = 0x08
	NormalSize      = 0x0C
	TangentSize     = 0x10
	TriangleSize    = 0x0C
	MeshSize        = 0x108
	HullVertSize    = 0x0C
	HullSize        = 0x08
	VisVertSize     = 0x0C
	VisTriangleSize = 0x0C

	// MaterialSize is the fixed width of Mesh.Material.
	MaterialSize = 256
)

// Each Go record must have exactly its on-disk size with no padding.
// A mismatch in either direction is a compile error: a larger struct
// indexes past the array, a smaller one overflows uintptr.
func _() {
	var x [1]struct{}
	_ = x[unsafe.Sizeof(HeaderV1{})-HeaderV1Size]
	_ = x[unsafe.Sizeof(BSphere{})-BSphereSize]
	_ = x[unsafe.Sizeof(BBox{})-BBoxSize]
	_ = x[unsafe.Sizeof(Position{})-PositionSize]
	_ = x[unsafe.Sizeof(TexCoord{})-TexCoordSize]
	_ = x[unsafe.Sizeof(Normal{})-NormalSize]
	_ = x[unsafe.Sizeof(Tangent{})-TangentSize]
	_ = x[unsafe.Sizeof(Triangle{})-TriangleSize]
	_ = x[unsafe.Sizeof(Mesh{})-MeshSize]
	_ = x[unsafe.Sizeof(HullVert{})-HullVertSize]
	_ = x[unsafe.Sizeof(Hull{})-HullSize]
	_ = x[unsafe.Sizeof(VisVert{})-VisVertSize]
	_ = x[unsafe.Sizeof(VisTriangle{})-VisTriangleSize]
}
