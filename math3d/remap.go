package math3d

// Remap converts v linearly from the range [a, b] into the range [c, d].
func Remap(v, a, b, c, d float64) float64 {
	return (v-a)/(b-a)*(d-c) + c
}
