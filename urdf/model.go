package urdf

import (
	"bytes"
	"encoding/xml"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	spatial "go.viam.com/transformtree/spatialmath"
)

// Extension is the file extension associated with URDF files.
const Extension string = "urdf"

const (
	fixedJoint    = "fixed"
	revoluteJoint = "revolute"
)

// modelConfig represents the supported fields in a robot description file.
// Name, type and link attributes are pointers so that an absent attribute
// stays distinguishable from one that is present but empty.
type modelConfig struct {
	XMLName xml.Name `xml:"robot"`
	Name    *string  `xml:"name,attr"`
	Links   []link   `xml:"link"`
	Joints  []joint  `xml:"joint"`
}

// link details the XML used in a URDF link element.
type link struct {
	XMLName xml.Name `xml:"link"`
	Name    *string  `xml:"name,attr"`
}

// joint details the XML used in a URDF joint element.
type joint struct {
	XMLName xml.Name `xml:"joint"`
	Name    *string  `xml:"name,attr"`
	Type    *string  `xml:"type,attr"`
	Parent  *frame   `xml:"parent"`
	Child   *frame   `xml:"child"`
	Origin  *pose    `xml:"origin,omitempty"`
	Axis    *axis    `xml:"axis,omitempty"`
}

type frame struct {
	Link *string `xml:"link,attr"`
}

type pose struct {
	XYZ string `xml:"xyz,attr"`
	RPY string `xml:"rpy,attr"`
}

type axis struct {
	XYZ string `xml:"xyz,attr"`
}

// node accumulates everything known about one link while a description is
// parsed. Link and joint declarations may appear in any order and reference
// each other by name, so they are merged onto nodes before any edge is
// committed.
type node struct {
	child        string
	parent       string
	child2parent *spatial.Transform
	jointName    string
	jointType    string
	jointAxis    r3.Vector
}

// LoadURDF parses a robot description and materializes its links and joints
// into the frame graph. Fixed joints become static edges; revolute joints
// are registered so UpdateJoint can move them. On failure the frame graph
// may be partially populated and should be discarded.
func (tt *TransformTree) LoadURDF(xmlData []byte) error {
	robot, err := decodeRobotElement(xmlData)
	if err != nil {
		return err
	}
	if robot.Name == nil {
		return ErrMissingRobotName
	}

	// All links must be known before any joint can be resolved against them.
	nodes := map[string]*node{}
	for _, linkElem := range robot.Links {
		if linkElem.Name == nil {
			return ErrMissingLinkName
		}
		// Duplicate link names are not rejected; the last occurrence wins.
		nodes[*linkElem.Name] = &node{
			child:        *linkElem.Name,
			child2parent: spatial.NewZeroTransform(),
			jointType:    fixedJoint,
			jointAxis:    r3.Vector{X: 1},
		}
	}

	for i := range robot.Joints {
		jointElem := &robot.Joints[i]
		if jointElem.Name == nil {
			return ErrMissingJointName
		}
		jointName := *jointElem.Name
		if jointElem.Type == nil {
			return NewMissingJointTypeError(jointName)
		}

		if jointElem.Parent == nil {
			return NewMissingJointParentError(jointName)
		}
		if jointElem.Parent.Link == nil {
			return NewMissingParentLinkNameError(jointName)
		}
		parentName := *jointElem.Parent.Link
		if _, ok := nodes[parentName]; !ok {
			return NewUnknownParentLinkError(parentName, jointName)
		}

		if jointElem.Child == nil {
			return NewMissingJointChildError(jointName)
		}
		if jointElem.Child.Link == nil {
			return NewMissingChildLinkNameError(jointName)
		}
		childNode, ok := nodes[*jointElem.Child.Link]
		if !ok {
			return NewUnknownChildLinkError(*jointElem.Child.Link, jointName)
		}

		if err := parseJoint(jointElem, childNode, parentName); err != nil {
			return err
		}
	}

	// Every node is fully merged now; commit them all.
	for _, n := range nodes {
		switch {
		case n.jointType == revoluteJoint:
			tt.RegisterJoint(n.jointName, n.child, n.parent, n.child2parent, n.jointAxis)
			tt.logger.Debugw("registered revolute joint", "joint", n.jointName, "child", n.child, "parent", n.parent)
		case n.parent != "":
			tt.graph.UpsertEdge(n.child, n.parent, n.child2parent)
		default:
			// A root link has no joint naming it as a child, so there is no
			// edge to commit; the link still becomes a frame when a joint
			// references it as a parent.
		}
	}
	tt.logger.Infow("loaded robot description", "robot", *robot.Name, "links", len(robot.Links), "joints", len(robot.Joints))
	return nil
}

// LoadURDFFile reads a robot description from a file and loads it.
func (tt *TransformTree) LoadURDFFile(filename string) error {
	//nolint:gosec
	xmlData, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "failed to read robot description file")
	}
	return tt.LoadURDF(xmlData)
}

// decodeRobotElement scans the document for the robot element and decodes it.
// Scanning token by token keeps an unparsable document and a document with no
// robot element distinguishable failures.
func decodeRobotElement(xmlData []byte) (*modelConfig, error) {
	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingRobotElement
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse robot description")
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "robot" {
			continue
		}
		robot := &modelConfig{}
		if err := decoder.DecodeElement(robot, &start); err != nil {
			return nil, errors.Wrap(err, "failed to parse robot description")
		}
		return robot, nil
	}
}

// parseJoint validates the joint element and merges it onto the node of its
// child link.
func parseJoint(jointElem *joint, childNode *node, parentName string) error {
	jointType := *jointElem.Type
	childNode.jointName = *jointElem.Name
	childNode.jointType = jointType
	childNode.parent = parentName

	switch jointType {
	case "planar", "floating", "continuous", "prismatic":
		return NewUnsupportedJointTypeError(jointType)
	case fixedJoint, revoluteJoint:
	default:
		return NewInvalidJointTypeError(jointType)
	}

	translation := r3.Vector{}
	rotation := spatial.NewZeroRotationMatrix()
	if jointElem.Origin != nil {
		if xyz := spaceDelimitedStringToFloatSlice(jointElem.Origin.XYZ); len(xyz) == 3 {
			translation = r3.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]}
		}
		if rpy := spaceDelimitedStringToFloatSlice(jointElem.Origin.RPY); len(rpy) == 3 {
			// The source format encodes rotations in the alias convention,
			// rotating the reference frame rather than the point, while the
			// frame graph expects the alibi convention. Transposing the
			// matrix converts between the two.
			rotation = spatial.NewRotationMatrixFromEulerXYZ(rpy[0], rpy[1], rpy[2]).Transpose()
		}
	}
	childNode.child2parent = spatial.NewTransform(rotation, translation)

	if jointType == revoluteJoint && jointElem.Axis != nil {
		if xyz := spaceDelimitedStringToFloatSlice(jointElem.Axis.XYZ); len(xyz) == 3 {
			childNode.jointAxis = r3.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]}
		}
	}
	return nil
}

// spaceDelimitedStringToFloatSlice splits up space-delimited fields in robot
// descriptions, such as xyz or rpy attributes.
func spaceDelimitedStringToFloatSlice(s string) []float64 {
	var converted []float64
	for _, value := range strings.Fields(s) {
		value, err := strconv.ParseFloat(value, 64)
		if err != nil {
			value = math.NaN()
		}
		converted = append(converted, value)
	}
	return converted
}
