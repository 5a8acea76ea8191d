package gds

import "fmt"

// Date is a GDSII timestamp: six 16-bit fields with an absolute year
// number (not an offset from 1900) and no timezone. Dates always travel in
// modified/accessed pairs.
type Date struct {
	Year   int16
	Month  int16
	Day    int16
	Hour   int16
	Minute int16
	Second int16
}

// NewDate returns the format's epoch default, 1970-01-01 00:00:00.
func NewDate() Date {
	return Date{Year: 1970, Month: 1, Day: 1}
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%02d/%02d %02d:%02d:%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}
