package bsm

import "math"

func length3(x, y, z float32) float32 {
	return float32(math.Sqrt(float64(x*x + y*y + z*z)))
}

// normalizeNormal rescales n to unit length.
func normalizeNormal(n *Normal) {
	m := length3(n.X, n.Y, n.Z)
	n.X /= m
	n.Y /= m
	n.Z /= m
}

// normalizeTangent rescales (X, Y, Z) to unit length and replaces
// Handedness with its sign, counting 0 (and -0) as positive.
func normalizeTangent(t *Tangent) {
	m := length3(t.X, t.Y, t.Z)
	t.X /= m
	t.Y /= m
	t.Z /= m
	if t.Handedness >= 0 {
		t.Handedness = 1
	} else {
		t.Handedness = -1
	}
}
