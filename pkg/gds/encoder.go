package gds

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ssargent/gdsii/pkg/codec"
)

// Write serializes the library to w in the fixed record order the decoder
// consumes: HEADER, BGNLIB, LIBNAME, UNITS, then each structure with its
// elements, then ENDLIB. The flatten is stateless and deterministic, so
// encoding a decoded library reproduces the bytes the first encoding
// produced.
func (l *Library) Write(w io.Writer) error {
	records, err := l.records()
	if err != nil {
		return err
	}

	ww := codec.NewWriter(w)
	for _, rec := range records {
		if err := ww.WriteRecord(rec); err != nil {
			return err
		}
	}
	return ww.Flush()
}

// WriteFile serializes the library to the file at path. A failed write
// reports the underlying error; it does not pretend a partial file is a
// success.
func (l *Library) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating gds file")
	}
	if err := l.Write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing gds file")
}

// records flattens the library into its ordered record sequence. Record
// sizes are computed at construction.
func (l *Library) records() ([]*codec.Record, error) {
	recs := []*codec.Record{
		codec.NewRecord(codec.TypeHeader, codec.DataInt16, codec.Int16Value(l.Version)),
		dateRecord(codec.TypeBgnLib, l.Modified, l.Accessed),
		codec.NewRecord(codec.TypeLibName, codec.DataStr, codec.StringValue(l.Name)),
		codec.NewRecord(codec.TypeUnits, codec.DataReal64,
			codec.Real64Value(l.UserUnits), codec.Real64Value(l.MeterUnits)),
	}

	for _, s := range l.Structures {
		recs = append(recs,
			dateRecord(codec.TypeBgnStr, s.Modified, s.Accessed),
			codec.NewRecord(codec.TypeStrName, codec.DataStr, codec.StringValue(s.Name)))
		for i, e := range s.Elements {
			elemRecs, err := e.records()
			if err != nil {
				return nil, errors.Wrapf(err, "structure %q element %d", s.Name, i)
			}
			recs = append(recs, elemRecs...)
		}
		recs = append(recs, codec.NewEmptyRecord(codec.TypeEndStr))
	}

	return append(recs, codec.NewEmptyRecord(codec.TypeEndLib)), nil
}

// dateRecord packs a modified/accessed pair into one 12-value int16
// record, the layout shared by BGNLIB and BGNSTR.
func dateRecord(typ codec.Type, mod, acc Date) *codec.Record {
	rec := codec.NewRecord(typ, codec.DataInt16)
	for _, d := range []Date{mod, acc} {
		for _, v := range []int16{d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second} {
			rec.AppendValue(codec.Int16Value(v))
		}
	}
	return rec
}

// records flattens the element into its kind tag record, one record per
// parameter in sequence order, and ENDEL.
func (e *Element) records() ([]*codec.Record, error) {
	tag, ok := kindTag(e.Kind)
	if !ok {
		return nil, ErrUnsetElementKind
	}

	recs := make([]*codec.Record, 0, len(e.Params)+2)
	recs = append(recs, codec.NewEmptyRecord(tag))
	for _, p := range e.Params {
		recs = append(recs, paramRecord(p))
	}
	return append(recs, codec.NewEmptyRecord(codec.TypeEndEl)), nil
}

func kindTag(k ElementKind) (codec.Type, bool) {
	switch k {
	case KindBoundary:
		return codec.TypeBoundary, true
	case KindPath:
		return codec.TypePath, true
	case KindSRef:
		return codec.TypeSRef, true
	case KindARef:
		return codec.TypeARef, true
	case KindText:
		return codec.TypeText, true
	case KindNode:
		return codec.TypeNode, true
	case KindBox:
		return codec.TypeBox, true
	default:
		return 0, false
	}
}

// paramRecord is the inverse of the decoder's parameter table.
func paramRecord(p Param) *codec.Record {
	switch v := p.(type) {
	case Layer:
		return codec.NewRecord(codec.TypeLayer, codec.DataInt16, codec.Int16Value(int16(v)))
	case XY:
		rec := codec.NewRecord(codec.TypeXY, codec.DataInt32)
		for _, pt := range v {
			rec.AppendValue(codec.Int32Value(pt.X))
			rec.AppendValue(codec.Int32Value(pt.Y))
		}
		return rec
	case Datatype:
		return codec.NewRecord(codec.TypeDatatype, codec.DataInt16, codec.Int16Value(int16(v)))
	case Width:
		return codec.NewRecord(codec.TypeWidth, codec.DataInt32, codec.Int32Value(int32(v)))
	case StructureName:
		return codec.NewRecord(codec.TypeSName, codec.DataStr, codec.StringValue(string(v)))
	case ColRow:
		rec := codec.NewRecord(codec.TypeColRow, codec.DataInt16)
		for _, cr := range v {
			rec.AppendValue(codec.Int16Value(cr))
		}
		return rec
	case TextType:
		return codec.NewRecord(codec.TypeTextType, codec.DataInt16, codec.Int16Value(int16(v)))
	case Presentation:
		return codec.NewRecord(codec.TypePresentation, codec.DataBits, codec.BitsValue(uint16(v)))
	case Text:
		return codec.NewRecord(codec.TypeString, codec.DataStr, codec.StringValue(string(v)))
	case STrans:
		return codec.NewRecord(codec.TypeSTrans, codec.DataBits, codec.BitsValue(uint16(v)))
	case Mag:
		return codec.NewRecord(codec.TypeMag, codec.DataReal64, codec.Real64Value(float64(v)))
	case Angle:
		return codec.NewRecord(codec.TypeAngle, codec.DataReal64, codec.Real64Value(float64(v)))
	case PathType:
		return codec.NewRecord(codec.TypePathType, codec.DataInt16, codec.Int16Value(int16(v)))
	case EFlags:
		return codec.NewRecord(codec.TypeEFlags, codec.DataBits, codec.BitsValue(uint16(v)))
	case NodeType:
		return codec.NewRecord(codec.TypeNodeType, codec.DataInt16, codec.Int16Value(int16(v)))
	case BeginExt:
		return codec.NewRecord(codec.TypeBgnExtn, codec.DataInt32, codec.Int32Value(int32(v)))
	default:
		// Param is a closed union; only this package can add variants.
		panic("gds: unknown parameter type")
	}
}
