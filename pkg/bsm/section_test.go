package bsm

import (
	"encoding/binary"
	"testing"
)

func TestRecordSizes(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int
	}{
		{"HeaderV1", HeaderV1{}, HeaderV1Size},
		{"BSphere", BSphere{}, BSphereSize},
		{"BBox", BBox{}, BBoxSize},
		{"Position", Position{}, PositionSize},
		{"TexCoord", TexCoord{}, TexCoordSize},
		{"Normal", Normal{}, NormalSize},
		{"Tangent", Tangent{}, TangentSize},
		{"Triangle", Triangle{}, TriangleSize},
		{"Mesh", Mesh{}, MeshSize},
		{"HullVert", HullVert{}, HullVertSize},
		{"Hull", Hull{}, HullSize},
		{"VisVert", VisVert{}, VisVertSize},
		{"VisTriangle", VisTriangle{}, VisTriangleSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := binary.Size(tt.v); got != tt.want {
				t.Errorf("binary.Size(%s) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestSizeQueries(t *testing.T) {
	h := &HeaderV1{
		NumVerts:     7,
		NumTris:      11,
		NumMeshes:    3,
		NumHullVerts: 13,
		NumHulls:     2,
		NumVisVerts:  17,
		NumVisTris:   19,
	}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"positions", PositionsBytes(h), 7 * 12},
		{"texcoords", TexCoordsBytes(h), 7 * 8},
		{"normals", NormalsBytes(h), 7 * 12},
		{"tangents", TangentsBytes(h), 7 * 16},
		{"tris", TrisBytes(h), 11 * 12},
		{"meshes", MeshesBytes(h), 3 * 264},
		{"hullverts", HullVertsBytes(h), 13 * 12},
		{"hulls", HullsBytes(h), 2 * 8},
		{"visverts", VisVertsBytes(h), 17 * 12},
		{"vistris", VisTrisBytes(h), 19 * 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s bytes = %d, want %d", tt.name, tt.got, tt.want)
			}
			s, ok := ParseSection(tt.name)
			if !ok {
				t.Fatalf("ParseSection(%q) failed", tt.name)
			}
			if s.Bytes(h) != tt.want {
				t.Errorf("%s.Bytes() = %d, want %d", s, s.Bytes(h), tt.want)
			}
			if int(s.Count(h))*s.RecordSize() != tt.want {
				t.Errorf("%s count*size mismatch", s)
			}
		})
	}
}

func TestSection_String(t *testing.T) {
	for _, s := range Sections {
		got, ok := ParseSection(s.String())
		if !ok || got != s {
			t.Errorf("ParseSection(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if Section(99).String() != "Unknown(99)" {
		t.Errorf("Section(99).String() = %q", Section(99).String())
	}
	if _, ok := ParseSection("bones"); ok {
		t.Error("ParseSection(bones) should fail")
	}
}

func TestSection_Offset(t *testing.T) {
	data := createFullTestFile()
	var h HeaderV1
	if err := ReadHeaderV1(data, &h); err != nil {
		t.Fatalf("ReadHeaderV1 failed: %v", err)
	}

	// Sections were laid out back to back in header order.
	next := int32(HeaderV1Size)
	for _, s := range Sections {
		if s.Offset(&h) != next {
			t.Errorf("%s offset = %d, want %d", s, s.Offset(&h), next)
		}
		next += int32(s.Bytes(&h))
	}
}
