// Package gds models GDSII stream files as an owned value tree and
// converts between that tree and the flat record stream read and written
// by pkg/codec.
//
// A Library owns its Structures, each Structure owns its Elements, and
// each Element owns its parameter sequence. There is no sharing and no
// back-reference anywhere in the tree, so it clones and crosses goroutine
// boundaries freely; concurrent mutation needs external synchronization.
package gds

import "fmt"

// Library is the root of a GDSII design: the file header fields plus the
// ordered structures. Structure order is the on-disk appearance order and
// is preserved through a read/write round trip.
type Library struct {
	Version  int16
	Name     string
	Modified Date
	Accessed Date

	// UserUnits is the size of a database unit in user units, MeterUnits
	// the size of a database unit in meters. Stored as found; no unit
	// arithmetic is performed.
	UserUnits  float64
	MeterUnits float64

	Structures []*Structure
}

// New returns a library with the given version and name. Dates default to
// the 1970 epoch, units to zero and the structure list to empty.
func New(version int16, name string) *Library {
	return &Library{
		Version:  version,
		Name:     name,
		Modified: NewDate(),
		Accessed: NewDate(),
	}
}

func (l *Library) String() string {
	return fmt.Sprintf("Library %s (version %d), modified %s / accessed %s",
		l.Name, l.Version, l.Modified, l.Accessed)
}

// Structure is a named, reusable collection of elements, analogous to a
// design cell. Names are unique within a library by convention only;
// nothing here enforces it.
type Structure struct {
	Name     string
	Modified Date
	Accessed Date
	Elements []*Element
}

// NewStructure returns an empty, unnamed structure with epoch dates.
func NewStructure() *Structure {
	return &Structure{Modified: NewDate(), Accessed: NewDate()}
}
