// Package codec reads and writes the record layer of GDSII stream files.
//
// A GDSII stream is a flat sequence of self-delimiting records. Each record
// carries a 4-byte header followed by its payload:
//
//	[Size(2)][RecordType(1)][DataType(1)][Payload...]
//
// Fields:
//   - Size: 16-bit unsigned record length in bytes, big-endian, counting
//     the 4-byte header itself
//   - RecordType: tag selecting the record's meaning (HEADER, BGNLIB, ...)
//   - DataType: tag selecting the payload element encoding
//   - Payload: zero or more elements of the declared data type
//
// Everything in the format is big-endian.
//
// # Data Types
//
// The data type tag selects one of seven payload encodings:
//
//	0  no data
//	1  16-bit flag field
//	2  16-bit signed integer
//	3  32-bit signed integer
//	4  32-bit real (excess-64, base-16)
//	5  64-bit real (excess-64, base-16)
//	6  UTF-8 string, no terminator
//
// The real encodings predate IEEE 754 and are unique to this format: a sign
// bit, a 7-bit power-of-16 exponent biased by 64, and a fixed-width unsigned
// mantissa with an implicit radix point before its most significant bit.
// EncodeReal64 and friends convert between this layout and native floats.
//
// # Usage
//
// Records stream through Reader and Writer:
//
//	r := codec.NewReader(file)
//	for {
//	    rec, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // dispatch on rec.Type
//	}
//
// # Leniency
//
// Decoding is deliberately tolerant of producer quirks: a fixed-width
// payload whose declared length is not a multiple of the element width has
// its trailing partial element read and discarded. Many historical writers
// pad records, and that padding must not break decoding. Genuine framing
// problems (a truncated stream, a length smaller than the header, a data
// type tag outside the format) are hard errors.
//
// # Thread Safety
//
// Reader and Writer are not safe for concurrent use. Records are plain
// values with no shared state and may be moved between goroutines freely.
package codec
