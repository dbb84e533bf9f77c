package referenceframe

import "github.com/pkg/errors"

// ErrNoParent is returned when the parent of a root frame is requested.
var ErrNoParent = errors.New("frame has no parent")

// NewFrameMissingError returns an error indicating that the named frame is
// not in the frame graph.
func NewFrameMissingError(name string) error {
	return errors.Errorf("frame with name %q not in frame graph", name)
}

// NewFramesNotConnectedError returns an error indicating that no path of
// edges connects the two named frames.
func NewFramesNotConnectedError(src, dst string) error {
	return errors.Errorf("frames %q and %q are not connected", src, dst)
}

// NewCircularReferenceError returns an error indicating that the parentage
// of the named frame loops back on itself.
func NewCircularReferenceError(name string) error {
	return errors.Errorf("circular reference found in parentage of frame %q", name)
}
