package urdf

import "github.com/pkg/errors"

// Structural errors raised while loading a robot description. None of them
// are recoverable: the document is invalid and the whole load must be
// retried from scratch after it is fixed.
var (
	// ErrMissingRobotElement is returned when a document has no robot element.
	ErrMissingRobotElement = errors.New("robot element is missing")

	// ErrMissingRobotName is returned when the robot element has no name attribute.
	ErrMissingRobotName = errors.New("attribute 'name' is missing in robot element")

	// ErrMissingLinkName is returned when a link element has no name attribute.
	ErrMissingLinkName = errors.New("link name is missing")

	// ErrMissingJointName is returned when a joint element has no name attribute.
	ErrMissingJointName = errors.New("joint name is missing")
)

// NewMissingJointTypeError returns an error indicating that the named joint
// has no type attribute.
func NewMissingJointTypeError(jointName string) error {
	return errors.Errorf("joint type is missing in joint %q", jointName)
}

// NewMissingJointParentError returns an error indicating that the named
// joint has no parent element.
func NewMissingJointParentError(jointName string) error {
	return errors.Errorf("no parent specified in joint %q", jointName)
}

// NewMissingParentLinkNameError returns an error indicating that the parent
// element of the named joint has no link attribute.
func NewMissingParentLinkNameError(jointName string) error {
	return errors.Errorf("no parent link name given in joint %q", jointName)
}

// NewUnknownParentLinkError returns an error indicating that the parent link
// of the named joint was never declared.
func NewUnknownParentLinkError(linkName, jointName string) error {
	return errors.Errorf("parent link %q of joint %q is not defined", linkName, jointName)
}

// NewMissingJointChildError returns an error indicating that the named joint
// has no child element.
func NewMissingJointChildError(jointName string) error {
	return errors.Errorf("no child specified in joint %q", jointName)
}

// NewMissingChildLinkNameError returns an error indicating that the child
// element of the named joint has no link attribute.
func NewMissingChildLinkNameError(jointName string) error {
	return errors.Errorf("no child link name given in joint %q", jointName)
}

// NewUnknownChildLinkError returns an error indicating that the child link
// of the named joint was never declared.
func NewUnknownChildLinkError(linkName, jointName string) error {
	return errors.Errorf("child link %q of joint %q is not defined", linkName, jointName)
}

// NewUnsupportedJointTypeError returns an error indicating that the joint
// type is recognized but not supported.
func NewUnsupportedJointTypeError(jointType string) error {
	return errors.Errorf("unsupported joint type %q", jointType)
}

// NewInvalidJointTypeError returns an error indicating that the joint type
// is not a recognized joint type at all.
func NewInvalidJointTypeError(jointType string) error {
	return errors.Errorf("joint type %q is not allowed in a robot description", jointType)
}

// NewUnknownJointError returns an error indicating that no joint with the
// given name was ever registered.
func NewUnknownJointError(jointName string) error {
	return errors.Errorf("joint %q is not known", jointName)
}
