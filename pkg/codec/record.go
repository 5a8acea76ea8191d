package codec

// headerSize is the fixed record header: size, record type, data type.
const headerSize = 4

// Type identifies a GDSII record type.
type Type uint8

// Record type tags. The gaps are real; the format reserves tag values this
// codec does not model, and unlisted tags are consumed and ignored during
// decoding.
const (
	TypeHeader       Type = 0x00
	TypeBgnLib       Type = 0x01
	TypeLibName      Type = 0x02
	TypeUnits        Type = 0x03
	TypeEndLib       Type = 0x04
	TypeBgnStr       Type = 0x05
	TypeStrName      Type = 0x06
	TypeEndStr       Type = 0x07
	TypeBoundary     Type = 0x08
	TypePath         Type = 0x09
	TypeSRef         Type = 0x0A
	TypeARef         Type = 0x0B
	TypeText         Type = 0x0C
	TypeLayer        Type = 0x0D
	TypeDatatype     Type = 0x0E
	TypeWidth        Type = 0x0F
	TypeXY           Type = 0x10
	TypeEndEl        Type = 0x11
	TypeSName        Type = 0x12
	TypeColRow       Type = 0x13
	TypeNode         Type = 0x15
	TypeTextType     Type = 0x16
	TypePresentation Type = 0x17
	TypeString       Type = 0x19
	TypeSTrans       Type = 0x1A
	TypeMag          Type = 0x1B
	TypeAngle        Type = 0x1C
	TypePathType     Type = 0x21
	TypeEFlags       Type = 0x26
	TypeNodeType     Type = 0x2A
	TypeBox          Type = 0x2D
	TypeBgnExtn      Type = 0x30
)

// DataType identifies the encoding of a record's payload elements.
type DataType uint8

// Data type tags.
const (
	DataNone   DataType = 0x00
	DataBits   DataType = 0x01
	DataInt16  DataType = 0x02
	DataInt32  DataType = 0x03
	DataReal32 DataType = 0x04
	DataReal64 DataType = 0x05
	DataStr    DataType = 0x06
)

// Valid reports whether d is inside the format's tag range.
func (d DataType) Valid() bool {
	return d <= DataStr
}

// ElementSize returns the encoded width in bytes of one payload element.
// Strings are variable length and report zero.
func (d DataType) ElementSize() int {
	switch d {
	case DataBits, DataInt16:
		return 2
	case DataInt32, DataReal32:
		return 4
	case DataReal64:
		return 8
	default:
		return 0
	}
}

// Record is one length-prefixed unit of a GDSII stream. Size always equals
// 4 plus the payload byte length; the constructors and AppendValue keep it
// consistent so writing never has to recompute it.
type Record struct {
	Size     uint16
	Type     Type
	DataType DataType
	values   []Value
}

// NewRecord builds a record and computes its size from the values.
func NewRecord(typ Type, dt DataType, values ...Value) *Record {
	r := &Record{Type: typ, DataType: dt, values: values}
	r.UpdateSize()
	return r
}

// NewEmptyRecord builds a record with no payload, such as ENDEL or ENDLIB.
func NewEmptyRecord(typ Type) *Record {
	return &Record{Size: headerSize, Type: typ, DataType: DataNone}
}

// AppendValue adds a payload value and recomputes the record size.
func (r *Record) AppendValue(v Value) {
	r.values = append(r.values, v)
	r.UpdateSize()
}

// UpdateSize recomputes Size from the data type and current values. String
// payloads contribute their raw byte length, fixed-width payloads the
// element width per value.
func (r *Record) UpdateSize() {
	size := headerSize
	if r.DataType == DataStr {
		for _, v := range r.values {
			if s, ok := v.AsString(); ok {
				size += len(s)
			}
		}
	} else {
		size += r.DataType.ElementSize() * len(r.values)
	}
	r.Size = uint16(size)
}

// Len returns the number of payload values.
func (r *Record) Len() int {
	return len(r.values)
}

// ValueAt returns the i-th payload value, or the zero Value when i is out
// of range. The zero Value matches no accessor, so a missing value and a
// mistyped value look the same to callers.
func (r *Record) ValueAt(i int) Value {
	if i < 0 || i >= len(r.values) {
		return Value{}
	}
	return r.values[i]
}
