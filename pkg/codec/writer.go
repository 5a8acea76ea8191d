package codec

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Writer encodes GDSII records onto a byte stream through a buffer.
// Callers must Flush after the last record.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter wraps w for record encoding.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteRecord emits the record header and payload. The Size field is
// trusted as already consistent; the Record constructors and AppendValue
// maintain it.
func (w *Writer) WriteRecord(rec *Record) error {
	var header [headerSize]byte
	binary.BigEndian.PutUint16(header[0:2], rec.Size)
	header[2] = byte(rec.Type)
	header[3] = byte(rec.DataType)
	if _, err := w.bw.Write(header[:]); err != nil {
		return errors.Wrap(err, "writing record header")
	}

	for _, v := range rec.values {
		if err := w.writeValue(v); err != nil {
			return errors.Wrap(err, "writing record payload")
		}
	}
	return nil
}

func (w *Writer) writeValue(v Value) error {
	var err error
	switch v.typ {
	case DataBits:
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], v.bits)
		_, err = w.bw.Write(b[:])
	case DataInt16:
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(v.i16))
		_, err = w.bw.Write(b[:])
	case DataInt32:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(v.i32))
		_, err = w.bw.Write(b[:])
	case DataReal32:
		b := EncodeReal32(v.f32)
		_, err = w.bw.Write(b[:])
	case DataReal64:
		b := EncodeReal64(v.f64)
		_, err = w.bw.Write(b[:])
	case DataStr:
		_, err = w.bw.WriteString(v.str)
	}
	return err
}

// Flush writes any buffered bytes to the underlying stream.
func (w *Writer) Flush() error {
	return errors.Wrap(w.bw.Flush(), "flushing record stream")
}
