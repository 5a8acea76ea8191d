package gds

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ssargent/gdsii/pkg/codec"
)

// Read decodes one library from a GDSII record stream in a single forward
// pass, holding no more state than the library fields plus the structure
// and element currently being filled.
//
// Read returns either a fully populated Library or an error saying at
// which record decoding stopped. One deliberate exception: a parameter
// record whose payload does not carry the expected data type is skipped
// without error. The format is old and produced by many writers with
// optional and vendor fields this codec does not model, so a single odd
// parameter must not kill the whole file. Records with unrecognized type
// tags are consumed and ignored for the same reason.
func Read(r io.Reader) (*Library, error) {
	rr := codec.NewReader(r)
	st := newDecodeState()
	for i := 0; ; i++ {
		rec, err := rr.Next()
		if err == io.EOF {
			return nil, ErrMissingEndLib
		}
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		done, err := st.apply(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		if done {
			return st.lib, nil
		}
	}
}

// ReadFile decodes the library stored at path.
func ReadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening gds file")
	}
	defer f.Close()
	return Read(f)
}

// decodeState folds a record stream into a library. Three accumulators
// mirror the stream's nesting: the library fields, the structure being
// filled and the element being filled. ENDSTR and ENDEL push an
// accumulator into its parent and reset it.
type decodeState struct {
	lib     *Library
	str     *Structure
	elem    *Element
	strOpen bool
}

func newDecodeState() *decodeState {
	return &decodeState{
		lib:  New(0, ""),
		str:  NewStructure(),
		elem: NewElement(KindUnset),
	}
}

// elemOpen reports whether element records have arrived since the last
// ENDEL.
func (st *decodeState) elemOpen() bool {
	return st.elem.Kind != KindUnset || len(st.elem.Params) > 0
}

// apply folds one record into the state. done is true after ENDLIB.
//
// Library and structure header fields default to their accumulator's
// initial value when the record is absent or mistyped; parameters are
// skipped entirely on mismatch, never defaulted.
func (st *decodeState) apply(rec *codec.Record) (done bool, err error) {
	switch rec.Type {
	case codec.TypeHeader:
		if v, ok := rec.ValueAt(0).AsInt16(); ok {
			st.lib.Version = v
		}
	case codec.TypeBgnLib:
		st.lib.Modified, st.lib.Accessed = decodeDates(rec)
	case codec.TypeLibName:
		if s, ok := rec.ValueAt(0).AsString(); ok {
			st.lib.Name = s
		}
	case codec.TypeUnits:
		if u, ok := rec.ValueAt(0).AsReal64(); ok {
			st.lib.UserUnits = u
		}
		if m, ok := rec.ValueAt(1).AsReal64(); ok {
			st.lib.MeterUnits = m
		}
	case codec.TypeEndLib:
		if st.elemOpen() {
			return false, ErrUnterminatedElement
		}
		if st.strOpen {
			return false, ErrUnterminatedStructure
		}
		return true, nil

	case codec.TypeBgnStr:
		st.str.Modified, st.str.Accessed = decodeDates(rec)
		st.strOpen = true
	case codec.TypeStrName:
		if s, ok := rec.ValueAt(0).AsString(); ok {
			st.str.Name = s
		}
		st.strOpen = true
	case codec.TypeEndStr:
		if st.elemOpen() {
			return false, ErrUnterminatedElement
		}
		st.lib.Structures = append(st.lib.Structures, st.str)
		st.str = NewStructure()
		st.strOpen = false

	case codec.TypeBoundary:
		st.elem.Kind = KindBoundary
	case codec.TypePath:
		st.elem.Kind = KindPath
	case codec.TypeSRef:
		st.elem.Kind = KindSRef
	case codec.TypeARef:
		st.elem.Kind = KindARef
	case codec.TypeText:
		st.elem.Kind = KindText
	case codec.TypeNode:
		st.elem.Kind = KindNode
	case codec.TypeBox:
		st.elem.Kind = KindBox
	case codec.TypeEndEl:
		st.str.Elements = append(st.str.Elements, st.elem)
		st.elem = NewElement(KindUnset)

	case codec.TypeLayer:
		if v, ok := rec.ValueAt(0).AsInt16(); ok {
			st.addParam(Layer(v))
		}
	case codec.TypeXY:
		st.addParam(decodeXY(rec))
	case codec.TypeDatatype:
		if v, ok := rec.ValueAt(0).AsInt16(); ok {
			st.addParam(Datatype(v))
		}
	case codec.TypeWidth:
		if v, ok := rec.ValueAt(0).AsInt32(); ok {
			st.addParam(Width(v))
		}
	case codec.TypeSName:
		if s, ok := rec.ValueAt(0).AsString(); ok {
			st.addParam(StructureName(s))
		}
	case codec.TypeColRow:
		st.addParam(decodeColRow(rec))
	case codec.TypeTextType:
		if v, ok := rec.ValueAt(0).AsInt16(); ok {
			st.addParam(TextType(v))
		}
	case codec.TypePresentation:
		if v, ok := rec.ValueAt(0).AsBits(); ok {
			st.addParam(Presentation(v))
		}
	case codec.TypeString:
		if s, ok := rec.ValueAt(0).AsString(); ok {
			st.addParam(Text(s))
		}
	case codec.TypeSTrans:
		if v, ok := rec.ValueAt(0).AsBits(); ok {
			st.addParam(STrans(v))
		}
	case codec.TypeMag:
		if v, ok := rec.ValueAt(0).AsReal64(); ok {
			st.addParam(Mag(v))
		}
	case codec.TypeAngle:
		if v, ok := rec.ValueAt(0).AsReal64(); ok {
			st.addParam(Angle(v))
		}
	case codec.TypePathType:
		if v, ok := rec.ValueAt(0).AsInt16(); ok {
			st.addParam(PathType(v))
		}
	case codec.TypeEFlags:
		if v, ok := rec.ValueAt(0).AsBits(); ok {
			st.addParam(EFlags(v))
		}
	case codec.TypeNodeType:
		if v, ok := rec.ValueAt(0).AsInt16(); ok {
			st.addParam(NodeType(v))
		}
	case codec.TypeBgnExtn:
		if v, ok := rec.ValueAt(0).AsInt32(); ok {
			st.addParam(BeginExt(v))
		}

	default:
		// Unrecognized record type; already consumed, nothing to fold.
	}
	return false, nil
}

func (st *decodeState) addParam(p Param) {
	st.elem.Params = append(st.elem.Params, p)
}

// decodeDates unpacks the 12 int16 values of a BGNLIB or BGNSTR record
// into a modified/accessed pair. Missing or mistyped fields read as zero.
func decodeDates(rec *codec.Record) (Date, Date) {
	var f [12]int16
	for i := range f {
		if v, ok := rec.ValueAt(i).AsInt16(); ok {
			f[i] = v
		}
	}
	mod := Date{Year: f[0], Month: f[1], Day: f[2], Hour: f[3], Minute: f[4], Second: f[5]}
	acc := Date{Year: f[6], Month: f[7], Day: f[8], Hour: f[9], Minute: f[10], Second: f[11]}
	return mod, acc
}

// decodeXY folds the record's int32 values into coordinate pairs. An odd
// trailing value has no partner and is dropped.
func decodeXY(rec *codec.Record) XY {
	points := make(XY, 0, rec.Len()/2)
	for i := 0; i+1 < rec.Len(); i += 2 {
		x, _ := rec.ValueAt(i).AsInt32()
		y, _ := rec.ValueAt(i + 1).AsInt32()
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// decodeColRow collects every int16 value of the record, not just the
// conventional two.
func decodeColRow(rec *codec.Record) ColRow {
	vals := make(ColRow, 0, rec.Len())
	for i := 0; i < rec.Len(); i++ {
		v, _ := rec.ValueAt(i).AsInt16()
		vals = append(vals, v)
	}
	return vals
}
