package codec

import (
	"bufio"
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Reader decodes GDSII records sequentially from a byte stream.
type Reader struct {
	br *bufio.Reader
}

// NewReader wraps r for sequential record decoding.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next reads one record. It returns io.EOF when the stream ends cleanly at
// a record boundary; end-of-stream inside a record surfaces as a framing
// error instead.
//
// Fixed-width payloads are decoded element by element until the declared
// length is consumed. A trailing partial element is read and discarded, not
// reported: some producers pad records and the padding must not break
// decoding.
func (r *Reader) Next() (*Record, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r.br, header[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "reading record header")
	}

	size := binary.BigEndian.Uint16(header[0:2])
	if size < headerSize {
		return nil, errors.Wrapf(ErrInvalidLength, "declared size %d", size)
	}

	rec := &Record{Size: size, Type: Type(header[2]), DataType: DataType(header[3])}
	if !rec.DataType.Valid() {
		return nil, errors.Wrapf(ErrUnknownDataType, "tag 0x%02x", header[3])
	}

	payload := int(size) - headerSize
	switch rec.DataType {
	case DataNone:
		// Nothing to decode; skip any declared payload to stay aligned.
		if err := r.discard(payload); err != nil {
			return nil, err
		}
	case DataStr:
		buf := make([]byte, payload)
		if _, err := io.ReadFull(r.br, buf); err != nil {
			return nil, errors.Wrap(unexpectedEOF(err), "reading string payload")
		}
		if !utf8.Valid(buf) {
			return nil, errors.Wrapf(ErrInvalidUTF8, "record type 0x%02x", header[2])
		}
		rec.values = []Value{StringValue(string(buf))}
	default:
		width := rec.DataType.ElementSize()
		buf := make([]byte, width)
		for payload >= width {
			if _, err := io.ReadFull(r.br, buf); err != nil {
				return nil, errors.Wrap(unexpectedEOF(err), "reading record payload")
			}
			rec.values = append(rec.values, decodeElement(rec.DataType, buf))
			payload -= width
		}
		if err := r.discard(payload); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

func (r *Reader) discard(n int) error {
	if n == 0 {
		return nil
	}
	if _, err := r.br.Discard(n); err != nil {
		return errors.Wrap(unexpectedEOF(err), "discarding trailing record bytes")
	}
	return nil
}

// unexpectedEOF promotes a clean EOF inside a declared payload to
// io.ErrUnexpectedEOF so it is distinguishable from end-of-stream.
func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func decodeElement(dt DataType, b []byte) Value {
	switch dt {
	case DataBits:
		return BitsValue(binary.BigEndian.Uint16(b))
	case DataInt16:
		return Int16Value(int16(binary.BigEndian.Uint16(b)))
	case DataInt32:
		return Int32Value(int32(binary.BigEndian.Uint32(b)))
	case DataReal32:
		return Real32Value(DecodeReal32(b))
	default:
		return Real64Value(DecodeReal64(b))
	}
}
