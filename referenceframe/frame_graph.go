// Package referenceframe provides a store of named coordinate frames related
// by rigid transforms, allowing for transformations between any two frames.
package referenceframe

import (
	"go.uber.org/multierr"

	spatial "go.viam.com/transformtree/spatialmath"
)

// FrameGraph is a directed graph of named frames. Each edge holds the
// transform from a child frame to its parent frame; a child has at most one
// parent edge, so the graph forms one or more trees.
type FrameGraph struct {
	name   string
	edges  map[string]*graphEdge
	frames map[string]bool
}

// graphEdge is the single parent edge of a child frame.
type graphEdge struct {
	parent    string
	transform *spatial.Transform
}

// NewFrameGraph creates an empty graph of frames.
func NewFrameGraph(name string) *FrameGraph {
	return &FrameGraph{
		name:   name,
		edges:  map[string]*graphEdge{},
		frames: map[string]bool{},
	}
}

// Name returns the name of the frame graph.
func (fg *FrameGraph) Name() string {
	return fg.name
}

// UpsertEdge inserts or replaces the directed edge from the child frame to
// the parent frame. Frames named by the edge spring into existence as a side
// effect of the insertion; there is no separate call to create a frame.
func (fg *FrameGraph) UpsertEdge(child, parent string, tf *spatial.Transform) {
	fg.frames[child] = true
	fg.frames[parent] = true
	fg.edges[child] = &graphEdge{parent: parent, transform: tf}
}

// HasFrame indicates whether a frame with the given name is in the graph.
func (fg *FrameGraph) HasFrame(name string) bool {
	return fg.frames[name]
}

// FrameNames returns the names of all frames in the graph.
func (fg *FrameGraph) FrameNames() []string {
	var frameNames []string
	for name := range fg.frames {
		frameNames = append(frameNames, name)
	}
	return frameNames
}

// Parent returns the name of the frame the given frame is attached to.
// A root frame, one with no parent edge, returns ErrNoParent.
func (fg *FrameGraph) Parent(name string) (string, error) {
	if !fg.HasFrame(name) {
		return "", NewFrameMissingError(name)
	}
	edge, ok := fg.edges[name]
	if !ok {
		return "", ErrNoParent
	}
	return edge.parent, nil
}

// Transform returns the net transform from the src frame to the dst frame,
// composed along the path connecting them.
func (fg *FrameGraph) Transform(src, dst string) (*spatial.Transform, error) {
	var errAll error
	if !fg.HasFrame(src) {
		multierr.AppendInto(&errAll, NewFrameMissingError(src))
	}
	if !fg.HasFrame(dst) {
		multierr.AppendInto(&errAll, NewFrameMissingError(dst))
	}
	if errAll != nil {
		return nil, errAll
	}
	if src == dst {
		return spatial.NewZeroTransform(), nil
	}

	srcToRoot, srcRoot, err := fg.composeToRoot(src)
	if err != nil {
		return nil, err
	}
	dstToRoot, dstRoot, err := fg.composeToRoot(dst)
	if err != nil {
		return nil, err
	}
	if srcRoot != dstRoot {
		return nil, NewFramesNotConnectedError(src, dst)
	}

	// transform from src to the shared root, then from the root back to dst
	return spatial.Compose(dstToRoot.Inverse(), srcToRoot), nil
}

// composeToRoot walks parent edges from the given frame to its root,
// composing the edge transforms along the way. New transforms are added to
// the left, so the result maps the frame into its root frame.
func (fg *FrameGraph) composeToRoot(name string) (*spatial.Transform, string, error) {
	q := spatial.NewZeroTransform()
	steps := 0
	for {
		edge, ok := fg.edges[name]
		if !ok {
			return q, name, nil
		}
		if steps++; steps > len(fg.edges) {
			return nil, "", NewCircularReferenceError(name)
		}
		q = spatial.Compose(edge.transform, q)
		name = edge.parent
	}
}
