package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Transform is a 4x4 homogeneous transformation matrix encoding a rotation
// and a translation between two coordinate frames.
type Transform struct {
	Mat mgl64.Mat4
}

// NewZeroTransform returns the identity transform.
func NewZeroTransform() *Transform {
	return &Transform{mgl64.Ident4()}
}

// NewTransform composes a rotation matrix and a translation vector into a
// homogeneous transform.
func NewTransform(rotation *RotationMatrix, translation r3.Vector) *Transform {
	m := rotation.Mat.Mat4()
	m.Set(0, 3, translation.X)
	m.Set(1, 3, translation.Y)
	m.Set(2, 3, translation.Z)
	return &Transform{m}
}

// Compose returns the transform a ∘ b, the transform which applies b first
// and then a.
func Compose(a, b *Transform) *Transform {
	return &Transform{a.Mat.Mul4(b.Mat)}
}

// Inverse returns the inverse of the transform.
func (t *Transform) Inverse() *Transform {
	return &Transform{t.Mat.Inv()}
}

// Rotation returns the top left 3x3 rotation block of the transform.
func (t *Transform) Rotation() *RotationMatrix {
	return &RotationMatrix{t.Mat.Mat3()}
}

// Translation returns the XYZ translation parameters of the transform.
func (t *Transform) Translation() r3.Vector {
	col := t.Mat.Col(3).Vec3()
	return r3.Vector{X: col[0], Y: col[1], Z: col[2]}
}

// At returns the entry of the underlying matrix at the given row and column.
func (t *Transform) At(row, col int) float64 {
	return t.Mat.At(row, col)
}
