package math3d

import "math"

// Mat3 is a 3x3 matrix stored row-major. Rotation matrices pre-multiply
// column vectors: w = M * v.
type Mat3 struct {
	M [9]float64
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{M: [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// RotateX creates a rotation matrix around the X axis.
func RotateX(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{M: [9]float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}}
}

// RotateY creates a rotation matrix around the Y axis.
func RotateY(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{M: [9]float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}}
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{M: [9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}

// Mul returns the matrix product a * b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var r Mat3
	for row := range 3 {
		for col := range 3 {
			r.M[row*3+col] = a.M[row*3]*b.M[col] +
				a.M[row*3+1]*b.M[3+col] +
				a.M[row*3+2]*b.M[6+col]
		}
	}
	return r
}

// MulVec3 applies the matrix to a column vector.
func (a Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		a.M[0]*v.X + a.M[1]*v.Y + a.M[2]*v.Z,
		a.M[3]*v.X + a.M[4]*v.Y + a.M[5]*v.Z,
		a.M[6]*v.X + a.M[7]*v.Y + a.M[8]*v.Z,
	}
}

// Transpose returns the transposed matrix. For a pure rotation this is
// also the inverse.
func (a Mat3) Transpose() Mat3 {
	return Mat3{M: [9]float64{
		a.M[0], a.M[3], a.M[6],
		a.M[1], a.M[4], a.M[7],
		a.M[2], a.M[5], a.M[8],
	}}
}
