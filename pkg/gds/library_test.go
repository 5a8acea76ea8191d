package gds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	lib := New(600, "MYLIB")

	assert.Equal(t, int16(600), lib.Version)
	assert.Equal(t, "MYLIB", lib.Name)
	assert.Equal(t, NewDate(), lib.Modified)
	assert.Equal(t, NewDate(), lib.Accessed)
	assert.Zero(t, lib.UserUnits)
	assert.Zero(t, lib.MeterUnits)
	assert.Empty(t, lib.Structures)
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "1970/01/01 00:00:00", NewDate().String())
	assert.Equal(t, "2024/06/15 12:30:45", Date{2024, 6, 15, 12, 30, 45}.String())
}

func TestLibrary_String(t *testing.T) {
	lib := New(5, "LIB1")
	assert.Equal(t,
		"Library LIB1 (version 5), modified 1970/01/01 00:00:00 / accessed 1970/01/01 00:00:00",
		lib.String())
}

func TestElementKind_String(t *testing.T) {
	names := map[ElementKind]string{
		KindUnset:    "unset",
		KindBoundary: "boundary",
		KindPath:     "path",
		KindSRef:     "sref",
		KindARef:     "aref",
		KindText:     "text",
		KindNode:     "node",
		KindBox:      "box",
	}
	for kind, want := range names {
		assert.Equal(t, want, kind.String())
	}
}
