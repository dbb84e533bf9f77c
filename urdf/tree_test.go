package urdf

import (
	"math"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	spatial "go.viam.com/transformtree/spatialmath"
)

func assertTransformAlmostEqual(t *testing.T, got, want *spatial.Transform) {
	t.Helper()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			test.That(t, got.At(row, col), test.ShouldAlmostEqual, want.At(row, col))
		}
	}
}

func TestRegisterJointCommitsZeroTransform(t *testing.T) {
	tt := NewTransformTree("test", golog.NewTestLogger(t))
	zero := spatial.NewTransform(
		spatial.NewR4AAFromAxisAngle(r3.Vector{Y: 1}, 0.4).RotationMatrix(),
		r3.Vector{X: 1, Z: -2},
	)
	tt.RegisterJoint("j1", "arm", "base", zero, r3.Vector{Z: 1})

	// the zero-angle transform is the live edge before any update
	tf, err := tt.Graph().Transform("arm", "base")
	test.That(t, err, test.ShouldBeNil)
	assertTransformAlmostEqual(t, tf, zero)
}

func TestUpdateJointZeroAngle(t *testing.T) {
	tt := NewTransformTree("test", golog.NewTestLogger(t))
	zero := spatial.NewTransform(
		spatial.NewR4AAFromAxisAngle(r3.Vector{X: 1}, 1.2).RotationMatrix(),
		r3.Vector{Y: 3},
	)
	tt.RegisterJoint("j1", "arm", "base", zero, r3.Vector{Z: 1})
	test.That(t, tt.UpdateJoint("j1", 0), test.ShouldBeNil)

	// an angle of zero commits exactly the zero-angle transform
	tf, err := tt.Graph().Transform("arm", "base")
	test.That(t, err, test.ShouldBeNil)
	assertTransformAlmostEqual(t, tf, zero)
}

func TestUpdateJointIdempotent(t *testing.T) {
	tt := NewTransformTree("test", golog.NewTestLogger(t))
	zero := spatial.NewTransform(spatial.NewZeroRotationMatrix(), r3.Vector{X: 1})
	tt.RegisterJoint("j1", "arm", "base", zero, r3.Vector{Z: 1})

	test.That(t, tt.UpdateJoint("j1", 0.8), test.ShouldBeNil)
	first, err := tt.Graph().Transform("arm", "base")
	test.That(t, err, test.ShouldBeNil)

	// repeating the same angle does not accumulate
	test.That(t, tt.UpdateJoint("j1", 0.8), test.ShouldBeNil)
	second, err := tt.Graph().Transform("arm", "base")
	test.That(t, err, test.ShouldBeNil)
	assertTransformAlmostEqual(t, second, first)
}

func TestUpdateJointDoesNotMutateRecord(t *testing.T) {
	tt := NewTransformTree("test", golog.NewTestLogger(t))
	zero := spatial.NewTransform(spatial.NewZeroRotationMatrix(), r3.Vector{X: 2})
	tt.RegisterJoint("j1", "arm", "base", zero, r3.Vector{Z: 1})

	test.That(t, tt.UpdateJoint("j1", 1.5), test.ShouldBeNil)
	test.That(t, tt.UpdateJoint("j1", 0), test.ShouldBeNil)

	// returning to zero recovers the stored zero-angle transform
	tf, err := tt.Graph().Transform("arm", "base")
	test.That(t, err, test.ShouldBeNil)
	assertTransformAlmostEqual(t, tf, zero)
}

func TestUpdateJointZeroLengthAxis(t *testing.T) {
	doc := `<robot name="r">
		<link name="base"/>
		<link name="arm"/>
		<joint name="j1" type="revolute">
			<parent link="base"/>
			<child link="arm"/>
			<origin xyz="1 0 0"/>
			<axis xyz="0 0 0"/>
		</joint>
	</robot>`
	tt := NewTransformTree("test", golog.NewTestLogger(t))
	test.That(t, tt.LoadURDF([]byte(doc)), test.ShouldBeNil)

	// a degenerate axis contributes no rotation at any angle
	test.That(t, tt.UpdateJoint("j1", math.Pi/2), test.ShouldBeNil)
	tf, err := tt.Graph().Transform("arm", "base")
	test.That(t, err, test.ShouldBeNil)
	zero := spatial.NewTransform(spatial.NewZeroRotationMatrix(), r3.Vector{X: 1})
	assertTransformAlmostEqual(t, tf, zero)
}

func TestUpdateJointUnknown(t *testing.T) {
	tt := NewTransformTree("test", golog.NewTestLogger(t))
	err := tt.UpdateJoint("phantom", 1.0)
	test.That(t, err, test.ShouldBeError, NewUnknownJointError("phantom"))
}

func TestUpdateJointRotationAppliedInChildFrame(t *testing.T) {
	doc := `<robot name="r">
		<link name="base"/>
		<link name="arm"/>
		<joint name="j1" type="revolute">
			<parent link="base"/>
			<child link="arm"/>
			<origin xyz="1 0 0"/>
			<axis xyz="0 0 1"/>
		</joint>
	</robot>`
	tt := NewTransformTree("test", golog.NewTestLogger(t))
	test.That(t, tt.LoadURDF([]byte(doc)), test.ShouldBeNil)
	test.That(t, tt.UpdateJoint("j1", math.Pi/2), test.ShouldBeNil)

	// the joint rotation acts before the origin offset: the translation
	// stays (1,0,0) while the rotation block becomes a 90 degree z rotation
	tf, err := tt.Graph().Transform("arm", "base")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tf.Translation().X, test.ShouldAlmostEqual, 1)
	test.That(t, tf.Translation().Y, test.ShouldAlmostEqual, 0)
	test.That(t, tf.Translation().Z, test.ShouldAlmostEqual, 0)

	rot := tf.Rotation()
	test.That(t, rot.At(0, 0), test.ShouldAlmostEqual, 0)
	test.That(t, rot.At(0, 1), test.ShouldAlmostEqual, -1)
	test.That(t, rot.At(1, 0), test.ShouldAlmostEqual, 1)
	test.That(t, rot.At(1, 1), test.ShouldAlmostEqual, 0)
	test.That(t, rot.At(2, 2), test.ShouldAlmostEqual, 1)
}

func TestUpdateJointsAlongChain(t *testing.T) {
	doc := `<robot name="planar_2r">
		<link name="base"/>
		<link name="upper"/>
		<link name="lower"/>
		<joint name="shoulder" type="revolute">
			<parent link="base"/>
			<child link="upper"/>
			<axis xyz="0 0 1"/>
		</joint>
		<joint name="elbow" type="revolute">
			<parent link="upper"/>
			<child link="lower"/>
			<origin xyz="1 0 0"/>
			<axis xyz="0 0 1"/>
		</joint>
	</robot>`
	tt := NewTransformTree("test", golog.NewTestLogger(t))
	test.That(t, tt.LoadURDF([]byte(doc)), test.ShouldBeNil)

	// bend the shoulder 90 degrees: the elbow offset swings onto the y axis
	test.That(t, tt.UpdateJoint("shoulder", math.Pi/2), test.ShouldBeNil)
	tf, err := tt.Graph().Transform("lower", "base")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tf.Translation().X, test.ShouldAlmostEqual, 0)
	test.That(t, tf.Translation().Y, test.ShouldAlmostEqual, 1)

	// bending the elbow back straightens the composed rotation
	test.That(t, tt.UpdateJoint("elbow", -math.Pi/2), test.ShouldBeNil)
	tf, err = tt.Graph().Transform("lower", "base")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tf.Rotation().At(0, 0), test.ShouldAlmostEqual, 1)
	test.That(t, tf.Rotation().At(1, 1), test.ShouldAlmostEqual, 1)
	test.That(t, tf.Translation().Y, test.ShouldAlmostEqual, 1)
}
