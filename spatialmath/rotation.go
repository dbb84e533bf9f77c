// Package spatialmath provides the rotation and rigid-transform algebra used
// to express relationships between coordinate frames.
package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 3x3 matrix in 3D space representing an orientation.
type RotationMatrix struct {
	Mat mgl64.Mat3
}

// NewZeroRotationMatrix returns a rotation matrix representing no rotation.
func NewZeroRotationMatrix() *RotationMatrix {
	return &RotationMatrix{mgl64.Ident3()}
}

// NewRotationMatrixFromEulerXYZ builds the rotation described by three
// consecutive rotations about the x, y and z axes. The result follows the
// alias convention: it rotates the reference frame, not the point. Transpose
// the result to obtain the equivalent alibi (point-rotating) matrix.
func NewRotationMatrixFromEulerXYZ(roll, pitch, yaw float64) *RotationMatrix {
	m := mgl64.Rotate3DZ(yaw).Mul3(mgl64.Rotate3DY(pitch)).Mul3(mgl64.Rotate3DX(roll))
	return &RotationMatrix{m.Transpose()}
}

// Transpose returns the transpose of the matrix. For a rotation matrix this
// is also its inverse, and converts between the alias and alibi conventions.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	return &RotationMatrix{rm.Mat.Transpose()}
}

// Mul returns the matrix product rm * other.
func (rm *RotationMatrix) Mul(other *RotationMatrix) *RotationMatrix {
	return &RotationMatrix{rm.Mat.Mul3(other.Mat)}
}

// At returns the entry of the matrix at the given row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.Mat.At(row, col)
}

// QuatToRotationMatrix converts a unit quaternion to a rotation matrix in the
// alibi convention.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	mq := mgl64.Quat{W: q.Real, V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}}
	return &RotationMatrix{mq.Mat4().Mat3()}
}
