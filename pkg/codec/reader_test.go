package codec

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReader_Next_Int16Record(t *testing.T) {
	// HEADER record carrying version 5.
	r := NewReader(bytes.NewReader([]byte{0x00, 0x06, 0x00, 0x02, 0x00, 0x05}))

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if rec.Type != TypeHeader || rec.DataType != DataInt16 || rec.Size != 6 {
		t.Fatalf("header = %d/%d/%d, want 0/2/6", rec.Type, rec.DataType, rec.Size)
	}
	if v, ok := rec.ValueAt(0).AsInt16(); !ok || v != 5 {
		t.Errorf("value = %v, %v; want 5, true", v, ok)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next at end of stream = %v, want io.EOF", err)
	}
}

func TestReader_Next_TrailingPartialElementDiscarded(t *testing.T) {
	// Declared length 10 with int32 elements: 6 payload bytes hold one
	// whole element, the trailing 2 bytes are padding to discard.
	stream := []byte{
		0x00, 0x0A, 0x10, 0x03,
		0x00, 0x00, 0x00, 0x64,
		0xAA, 0xBB,
	}
	r := NewReader(bytes.NewReader(stream))

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if rec.Len() != 1 {
		t.Fatalf("Len = %d, want 1", rec.Len())
	}
	if v, ok := rec.ValueAt(0).AsInt32(); !ok || v != 100 {
		t.Errorf("value = %v, %v; want 100, true", v, ok)
	}

	// The padding must not leak into the next read.
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next after padded record = %v, want io.EOF", err)
	}
}

func TestReader_Next_StringRecord(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x08, 0x02, 0x06, 'L', 'I', 'B', '1'}))

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if rec.Len() != 1 {
		t.Fatalf("Len = %d, want 1", rec.Len())
	}
	if s, ok := rec.ValueAt(0).AsString(); !ok || s != "LIB1" {
		t.Errorf("value = %q, %v; want \"LIB1\", true", s, ok)
	}
}

func TestReader_Next_EmptyStringRecord(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x04, 0x02, 0x06}))

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if s, ok := rec.ValueAt(0).AsString(); !ok || s != "" {
		t.Errorf("value = %q, %v; want one empty string", s, ok)
	}
}

func TestReader_Next_NoDataRecordWithPayloadStaysAligned(t *testing.T) {
	// An ENDEL record dragging 2 declared payload bytes, then a normal
	// record. The payload is skipped so the next header lines up.
	stream := []byte{
		0x00, 0x06, 0x11, 0x00, 0xDE, 0xAD,
		0x00, 0x06, 0x0D, 0x02, 0x00, 0x01,
	}
	r := NewReader(bytes.NewReader(stream))

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("first Next failed: %v", err)
	}
	if rec.Type != TypeEndEl || rec.Len() != 0 {
		t.Fatalf("first record = type %d len %d, want ENDEL with no values", rec.Type, rec.Len())
	}

	rec, err = r.Next()
	if err != nil {
		t.Fatalf("second Next failed: %v", err)
	}
	if rec.Type != TypeLayer {
		t.Errorf("second record type = %d, want LAYER", rec.Type)
	}
}

func TestReader_Next_FramingErrors(t *testing.T) {
	testCases := []struct {
		name   string
		stream []byte
		want   error
	}{
		{
			name:   "length smaller than header",
			stream: []byte{0x00, 0x03, 0x00, 0x02},
			want:   ErrInvalidLength,
		},
		{
			name:   "data type tag outside the format",
			stream: []byte{0x00, 0x06, 0x00, 0x07, 0x00, 0x05},
			want:   ErrUnknownDataType,
		},
		{
			name:   "partial header",
			stream: []byte{0x00, 0x06},
			want:   io.ErrUnexpectedEOF,
		},
		{
			name:   "payload shorter than declared",
			stream: []byte{0x00, 0x08, 0x03, 0x05, 0x41, 0x10},
			want:   io.ErrUnexpectedEOF,
		},
		{
			name:   "string payload shorter than declared",
			stream: []byte{0x00, 0x08, 0x02, 0x06, 'L', 'I'},
			want:   io.ErrUnexpectedEOF,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tc.stream))
			_, err := r.Next()
			if !errors.Is(err, tc.want) {
				t.Errorf("Next = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestReader_Next_InvalidUTF8(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x06, 0x02, 0x06, 0xFF, 0xFE}))

	_, err := r.Next()
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Next = %v, want ErrInvalidUTF8", err)
	}
}

func TestReader_Next_CleanEOFIsEOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))

	_, err := r.Next()
	if err != io.EOF {
		t.Errorf("Next on empty stream = %v, want io.EOF", err)
	}
}
