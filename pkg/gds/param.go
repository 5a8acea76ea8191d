package gds

// Param is one typed attribute of an element. The set of parameter kinds
// is closed: adding one means adding a variant here plus its rows in the
// decoder and encoder tables. The format defines many more parameters than
// are modeled; unmodeled ones are dropped during decoding.
type Param interface {
	isParam()
}

// Point is one XY coordinate pair in database units.
type Point struct {
	X int32
	Y int32
}

// Layer is the layer number of an element.
type Layer int16

// XY is the coordinate list of an element.
type XY []Point

// Datatype is a user-defined attribute number.
type Datatype int16

// Width is the width of an element in database units.
type Width int32

// StructureName names the structure referenced by an SRef or ARef element.
type StructureName string

// ColRow carries the array dimensions of an ARef element, conventionally
// exactly two values: columns then rows.
type ColRow []int16

// TextType is the type number of a text element.
type TextType int16

// Presentation holds text presentation flags. Bits 10-11 select the font,
// bits 12-13 the vertical position.
type Presentation uint16

// Text is the content of a text element.
type Text string

// STrans holds structure transformation flags.
type STrans uint16

// Mag is a magnification factor.
type Mag float64

// Angle is a rotation in degrees; positive means counterclockwise.
type Angle float64

// PathType describes the ends of a path: 0 square, 1 round, 2 square
// extended by half the width, 4 custom extension via BeginExt.
type PathType int16

// EFlags holds element flags. Bit 15 marks template data, bit 14 external
// data.
type EFlags uint16

// NodeType is the type number of a node element.
type NodeType int16

// BeginExt is the start-point extension of a path, used with PathType 4.
type BeginExt int32

func (Layer) isParam()         {}
func (XY) isParam()            {}
func (Datatype) isParam()      {}
func (Width) isParam()         {}
func (StructureName) isParam() {}
func (ColRow) isParam()        {}
func (TextType) isParam()      {}
func (Presentation) isParam()  {}
func (Text) isParam()          {}
func (STrans) isParam()        {}
func (Mag) isParam()           {}
func (Angle) isParam()         {}
func (PathType) isParam()      {}
func (EFlags) isParam()        {}
func (NodeType) isParam()      {}
func (BeginExt) isParam()      {}
