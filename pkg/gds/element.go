package gds

// ElementKind identifies the geometry or annotation type of an element.
// The zero value marks an element whose kind record has not been seen yet;
// it has no tag on the wire and the encoder refuses to emit it.
type ElementKind uint8

const (
	KindUnset ElementKind = iota
	// KindBoundary is a filled polygon. By convention its XY parameter
	// repeats the first point as the last to close the loop.
	KindBoundary
	// KindPath is an open sequence of points with a width.
	KindPath
	// KindSRef is a reference to another structure, named by a
	// StructureName parameter.
	KindSRef
	// KindARef is an array of structure references, dimensioned by a
	// ColRow parameter.
	KindARef
	// KindText is a text annotation.
	KindText
	// KindNode describes an electrical path.
	KindNode
	// KindBox is an unfilled rectangle.
	KindBox
)

func (k ElementKind) String() string {
	switch k {
	case KindBoundary:
		return "boundary"
	case KindPath:
		return "path"
	case KindSRef:
		return "sref"
	case KindARef:
		return "aref"
	case KindText:
		return "text"
	case KindNode:
		return "node"
	case KindBox:
		return "box"
	default:
		return "unset"
	}
}

// Element is one geometry or annotation item plus its parameters. The
// parameter order is exactly the on-disk record order and is preserved
// through a round trip.
type Element struct {
	Kind   ElementKind
	Params []Param
}

// NewElement returns an element of the given kind with no parameters.
func NewElement(kind ElementKind) *Element {
	return &Element{Kind: kind}
}
