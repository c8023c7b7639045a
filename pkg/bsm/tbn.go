package bsm

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bitangent derives the bitangent of a TBN frame as
// cross(normal, tangent.xyz) * handedness.
func Bitangent(n Normal, t Tangent) r3.Vec {
	return r3.Scale(float64(t.Handedness), r3.Cross(normalVec(n), tangentVec(t)))
}

// Frame is the orthonormal tangent frame of one vertex.
type Frame struct {
	T, B, N r3.Vec
}

// Frame returns the TBN frame of vertex i.
func (m *Model) Frame(i int) Frame {
	n, t := m.Normals[i], m.Tangents[i]
	return Frame{
		T: tangentVec(t),
		B: Bitangent(n, t),
		N: normalVec(n),
	}
}

// TBNReport summarises the tangent frames of a model.
type TBNReport struct {
	Vertices      int
	Degenerate    int     // Frames with a non-finite normal or tangent
	NonOrthogonal int     // Frames where |dot(N, T)| exceeds the tolerance
	MaxDot        float64 // Largest |dot(N, T)| among finite frames
}

// CheckTBN measures how far each decoded tangent is from perpendicular
// to its normal. Zero-length inputs decode to NaN and count as degenerate.
func (m *Model) CheckTBN(tolerance float64) TBNReport {
	rep := TBNReport{Vertices: len(m.Normals)}
	for i := range m.Normals {
		n, t := normalVec(m.Normals[i]), tangentVec(m.Tangents[i])
		if !finite(n) || !finite(t) {
			rep.Degenerate++
			continue
		}
		d := math.Abs(r3.Dot(n, t))
		if d > rep.MaxDot {
			rep.MaxDot = d
		}
		if d > tolerance {
			rep.NonOrthogonal++
		}
	}
	return rep
}

func normalVec(n Normal) r3.Vec {
	return r3.Vec{X: float64(n.X), Y: float64(n.Y), Z: float64(n.Z)}
}

func tangentVec(t Tangent) r3.Vec {
	return r3.Vec{X: float64(t.X), Y: float64(t.Y), Z: float64(t.Z)}
}

func finite(v r3.Vec) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
