package codec

import "math"

// GDSII reals are not IEEE 754. Both widths share one layout: a sign bit,
// a 7-bit power-of-16 exponent biased by 64, and a big-endian unsigned
// mantissa with an implicit radix point before its most significant hex
// digit. A normalized nonzero mantissa lies in [1/16, 1).
const (
	real32MantissaDigits = 6  // 3 mantissa bytes, 2 hex digits each
	real64MantissaDigits = 14 // 7 mantissa bytes
)

// DecodeReal64 converts an 8-byte excess-64 base-16 real to a float64.
func DecodeReal64(b []byte) float64 {
	exp := int(b[0]&0x7f) - 64 - real64MantissaDigits
	var man uint64
	for _, x := range b[1:8] {
		man = man<<8 | uint64(x)
	}
	val := float64(man) * math.Pow(16, float64(exp))
	if b[0]&0x80 != 0 {
		return -val
	}
	return val
}

// DecodeReal32 converts a 4-byte excess-64 base-16 real to a float32.
func DecodeReal32(b []byte) float32 {
	exp := int(b[0]&0x7f) - 64 - real32MantissaDigits
	var man uint32
	for _, x := range b[1:4] {
		man = man<<8 | uint32(x)
	}
	val := float64(man) * math.Pow(16, float64(exp))
	if b[0]&0x80 != 0 {
		return float32(-val)
	}
	return float32(val)
}

// EncodeReal64 converts a float64 to the 8-byte stream form. The mantissa
// is truncated, not rounded. Zero encodes as all-zero bytes.
func EncodeReal64(f float64) [8]byte {
	var out [8]byte
	if f == 0 {
		return out
	}

	exp := uint8(64)
	man := math.Abs(f)
	for man >= 1 {
		man /= 16
		exp++
	}
	for man < 1.0/16 {
		man *= 16
		exp--
	}

	if f < 0 {
		exp |= 0x80
	}
	out[0] = exp

	manInt := uint64(man * math.Pow(16, real64MantissaDigits))
	for i := 7; i >= 1; i-- {
		out[i] = byte(manInt)
		manInt >>= 8
	}
	return out
}

// EncodeReal32 converts a float32 to the 4-byte stream form.
func EncodeReal32(f float32) [4]byte {
	var out [4]byte
	if f == 0 {
		return out
	}

	exp := uint8(64)
	man := math.Abs(float64(f))
	for man >= 1 {
		man /= 16
		exp++
	}
	for man < 1.0/16 {
		man *= 16
		exp--
	}

	if f < 0 {
		exp |= 0x80
	}
	out[0] = exp

	manInt := uint32(man * math.Pow(16, real32MantissaDigits))
	for i := 3; i >= 1; i-- {
		out[i] = byte(manInt)
		manInt >>= 8
	}
	return out
}
