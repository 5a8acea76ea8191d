package gds

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/gdsii/pkg/codec"
)

// stream serializes records into a byte buffer for decoder tests.
func stream(t *testing.T, records ...*codec.Record) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	w := codec.NewWriter(&buf)
	for _, rec := range records {
		require.NoError(t, w.WriteRecord(rec))
	}
	require.NoError(t, w.Flush())
	return &buf
}

func headerRecords(version int16, name string) []*codec.Record {
	return []*codec.Record{
		codec.NewRecord(codec.TypeHeader, codec.DataInt16, codec.Int16Value(version)),
		dateRecord(codec.TypeBgnLib, NewDate(), NewDate()),
		codec.NewRecord(codec.TypeLibName, codec.DataStr, codec.StringValue(name)),
		codec.NewRecord(codec.TypeUnits, codec.DataReal64, codec.Real64Value(0.001), codec.Real64Value(1e-9)),
	}
}

func TestRead_EmptyLibrary(t *testing.T) {
	records := append(headerRecords(5, "LIB1"), codec.NewEmptyRecord(codec.TypeEndLib))

	lib, err := Read(stream(t, records...))
	require.NoError(t, err)

	assert.Equal(t, int16(5), lib.Version)
	assert.Equal(t, "LIB1", lib.Name)
	assert.Equal(t, NewDate(), lib.Modified)
	assert.Equal(t, NewDate(), lib.Accessed)
	assert.InEpsilon(t, 0.001, lib.UserUnits, 1e-12)
	assert.InEpsilon(t, 1e-9, lib.MeterUnits, 1e-12)
	assert.Empty(t, lib.Structures)
}

func TestRead_BgnLibDates(t *testing.T) {
	dates := codec.NewRecord(codec.TypeBgnLib, codec.DataInt16)
	for _, v := range []int16{2024, 6, 15, 12, 30, 45, 2025, 1, 2, 3, 4, 5} {
		dates.AppendValue(codec.Int16Value(v))
	}
	lib, err := Read(stream(t, dates, codec.NewEmptyRecord(codec.TypeEndLib)))
	require.NoError(t, err)

	assert.Equal(t, Date{2024, 6, 15, 12, 30, 45}, lib.Modified)
	assert.Equal(t, Date{2025, 1, 2, 3, 4, 5}, lib.Accessed)
}

func TestRead_ShortBgnLibDefaultsToZero(t *testing.T) {
	// Only 6 of the 12 date fields present: the accessed date reads as
	// all zeros, not as an error.
	dates := codec.NewRecord(codec.TypeBgnLib, codec.DataInt16)
	for _, v := range []int16{2024, 6, 15, 12, 30, 45} {
		dates.AppendValue(codec.Int16Value(v))
	}
	lib, err := Read(stream(t, dates, codec.NewEmptyRecord(codec.TypeEndLib)))
	require.NoError(t, err)

	assert.Equal(t, Date{2024, 6, 15, 12, 30, 45}, lib.Modified)
	assert.Equal(t, Date{}, lib.Accessed)
}

func TestRead_MistypedHeaderKeepsDefaultVersion(t *testing.T) {
	records := []*codec.Record{
		codec.NewRecord(codec.TypeHeader, codec.DataStr, codec.StringValue("not a version")),
		codec.NewEmptyRecord(codec.TypeEndLib),
	}
	lib, err := Read(stream(t, records...))
	require.NoError(t, err)
	assert.Equal(t, int16(0), lib.Version)
}

func TestRead_LenientParameterSkip(t *testing.T) {
	// A LAYER record whose payload is int32 instead of int16 appends
	// nothing; decoding continues and the element keeps its other params.
	records := append(headerRecords(5, "LIB1"),
		dateRecord(codec.TypeBgnStr, NewDate(), NewDate()),
		codec.NewRecord(codec.TypeStrName, codec.DataStr, codec.StringValue("TOP")),
		codec.NewEmptyRecord(codec.TypeBoundary),
		codec.NewRecord(codec.TypeLayer, codec.DataInt32, codec.Int32Value(1)),
		codec.NewRecord(codec.TypeDatatype, codec.DataInt16, codec.Int16Value(7)),
		codec.NewEmptyRecord(codec.TypeEndEl),
		codec.NewEmptyRecord(codec.TypeEndStr),
		codec.NewEmptyRecord(codec.TypeEndLib),
	)

	lib, err := Read(stream(t, records...))
	require.NoError(t, err)
	require.Len(t, lib.Structures, 1)
	require.Len(t, lib.Structures[0].Elements, 1)

	elem := lib.Structures[0].Elements[0]
	assert.Equal(t, KindBoundary, elem.Kind)
	assert.Equal(t, []Param{Datatype(7)}, elem.Params)
}

func TestRead_UnknownRecordTypeIgnored(t *testing.T) {
	records := append(headerRecords(5, "LIB1"),
		// Tag 0x22 is real on the wire but not modeled here.
		codec.NewRecord(codec.Type(0x22), codec.DataInt16, codec.Int16Value(99)),
		codec.NewEmptyRecord(codec.TypeEndLib),
	)

	lib, err := Read(stream(t, records...))
	require.NoError(t, err)
	assert.Empty(t, lib.Structures)
}

func TestRead_XYOddTrailingValueDropped(t *testing.T) {
	records := append(headerRecords(5, "LIB1"),
		dateRecord(codec.TypeBgnStr, NewDate(), NewDate()),
		codec.NewRecord(codec.TypeStrName, codec.DataStr, codec.StringValue("TOP")),
		codec.NewEmptyRecord(codec.TypeBoundary),
		codec.NewRecord(codec.TypeXY, codec.DataInt32,
			codec.Int32Value(0), codec.Int32Value(0),
			codec.Int32Value(10), codec.Int32Value(20),
			codec.Int32Value(999)),
		codec.NewEmptyRecord(codec.TypeEndEl),
		codec.NewEmptyRecord(codec.TypeEndStr),
		codec.NewEmptyRecord(codec.TypeEndLib),
	)

	lib, err := Read(stream(t, records...))
	require.NoError(t, err)

	elem := lib.Structures[0].Elements[0]
	require.Len(t, elem.Params, 1)
	assert.Equal(t, XY{{0, 0}, {10, 20}}, elem.Params[0])
}

func TestRead_ColRowKeepsAllValues(t *testing.T) {
	records := append(headerRecords(5, "LIB1"),
		dateRecord(codec.TypeBgnStr, NewDate(), NewDate()),
		codec.NewRecord(codec.TypeStrName, codec.DataStr, codec.StringValue("ARR")),
		codec.NewEmptyRecord(codec.TypeARef),
		codec.NewRecord(codec.TypeColRow, codec.DataInt16,
			codec.Int16Value(4), codec.Int16Value(8), codec.Int16Value(2)),
		codec.NewEmptyRecord(codec.TypeEndEl),
		codec.NewEmptyRecord(codec.TypeEndStr),
		codec.NewEmptyRecord(codec.TypeEndLib),
	)

	lib, err := Read(stream(t, records...))
	require.NoError(t, err)

	elem := lib.Structures[0].Elements[0]
	require.Len(t, elem.Params, 1)
	assert.Equal(t, ColRow{4, 8, 2}, elem.Params[0])
}

func TestRead_MissingEndLib(t *testing.T) {
	_, err := Read(stream(t, headerRecords(5, "LIB1")...))
	assert.ErrorIs(t, err, ErrMissingEndLib)
}

func TestRead_UnterminatedElement(t *testing.T) {
	records := append(headerRecords(5, "LIB1"),
		dateRecord(codec.TypeBgnStr, NewDate(), NewDate()),
		codec.NewRecord(codec.TypeStrName, codec.DataStr, codec.StringValue("TOP")),
		codec.NewEmptyRecord(codec.TypeBoundary),
		codec.NewEmptyRecord(codec.TypeEndStr),
	)

	_, err := Read(stream(t, records...))
	assert.ErrorIs(t, err, ErrUnterminatedElement)
}

func TestRead_UnterminatedStructure(t *testing.T) {
	records := append(headerRecords(5, "LIB1"),
		dateRecord(codec.TypeBgnStr, NewDate(), NewDate()),
		codec.NewRecord(codec.TypeStrName, codec.DataStr, codec.StringValue("TOP")),
		codec.NewEmptyRecord(codec.TypeEndLib),
	)

	_, err := Read(stream(t, records...))
	assert.ErrorIs(t, err, ErrUnterminatedStructure)
}

func TestRead_ElementWithUnsetKindIsKept(t *testing.T) {
	// ENDEL without a preceding kind record pushes the element as found.
	// Only the encoder refuses unset kinds.
	records := append(headerRecords(5, "LIB1"),
		dateRecord(codec.TypeBgnStr, NewDate(), NewDate()),
		codec.NewRecord(codec.TypeStrName, codec.DataStr, codec.StringValue("TOP")),
		codec.NewRecord(codec.TypeLayer, codec.DataInt16, codec.Int16Value(3)),
		codec.NewEmptyRecord(codec.TypeEndEl),
		codec.NewEmptyRecord(codec.TypeEndStr),
		codec.NewEmptyRecord(codec.TypeEndLib),
	)

	lib, err := Read(stream(t, records...))
	require.NoError(t, err)

	elem := lib.Structures[0].Elements[0]
	assert.Equal(t, KindUnset, elem.Kind)
	assert.Equal(t, []Param{Layer(3)}, elem.Params)
}

func TestRead_FramingErrorReportsRecordIndex(t *testing.T) {
	buf := stream(t, headerRecords(5, "LIB1")...)
	buf.Write([]byte{0x00, 0x06, 0x0D, 0x07}) // data type tag 7 at record 4

	_, err := Read(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrUnknownDataType)
	assert.Contains(t, err.Error(), "record 4")
}
