// Package urdf loads robot descriptions in the Unified Robot Description
// Format (URDF) into a frame graph and tracks revolute joints so that the
// transform across each joint can be recomputed as its angle changes.
package urdf

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	"go.viam.com/transformtree/referenceframe"
	spatial "go.viam.com/transformtree/spatialmath"
)

// TransformTree ties a frame graph to the joints that can move its edges.
type TransformTree struct {
	graph  *referenceframe.FrameGraph
	joints map[string]*jointRecord
	logger golog.Logger
}

// jointRecord is the registry entry for one revolute joint.
type jointRecord struct {
	child        string
	parent       string
	child2parent *spatial.Transform
	axis         r3.Vector
}

// NewTransformTree creates a TransformTree with an empty frame graph and no
// registered joints.
func NewTransformTree(name string, logger golog.Logger) *TransformTree {
	return &TransformTree{
		graph:  referenceframe.NewFrameGraph(name),
		joints: map[string]*jointRecord{},
		logger: logger,
	}
}

// Graph returns the underlying frame graph, for frame-to-frame queries.
func (tt *TransformTree) Graph() *referenceframe.FrameGraph {
	return tt.graph
}

// RegisterJoint adds a revolute joint relating the child frame to the parent
// frame. child2parent is the transform between the two frames at a joint
// angle of zero; axis is the rotation axis of the joint, defined in the
// child frame. The zero-angle transform is committed to the frame graph
// immediately, so a registered joint always has a live edge even if its
// angle is never set.
func (tt *TransformTree) RegisterJoint(name, child, parent string, child2parent *spatial.Transform, axis r3.Vector) {
	tt.graph.UpsertEdge(child, parent, child2parent)
	tt.joints[name] = &jointRecord{
		child:        child,
		parent:       parent,
		child2parent: child2parent,
		axis:         axis,
	}
}

// UpdateJoint sets the angle of a registered joint, in radians, and commits
// the resulting child-to-parent transform to the frame graph. Angles are
// unbounded; joint limits are not enforced.
func (tt *TransformTree) UpdateJoint(name string, angle float64) error {
	joint, ok := tt.joints[name]
	if !ok {
		return NewUnknownJointError(name)
	}
	// The axis is defined in the child frame, so the angle-dependent
	// rotation must act before the fixed zero-angle offset.
	rotation := spatial.NewR4AAFromAxisAngle(joint.axis, angle).RotationMatrix()
	jointTf := spatial.NewTransform(rotation, r3.Vector{})
	tt.graph.UpsertEdge(joint.child, joint.parent, spatial.Compose(joint.child2parent, jointTf))
	return nil
}
