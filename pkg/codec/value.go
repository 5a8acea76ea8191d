package codec

// Value is one decoded payload element. The zero Value has data type
// DataNone and matches no accessor.
type Value struct {
	typ  DataType
	bits uint16
	i16  int16
	i32  int32
	f32  float32
	f64  float64
	str  string
}

// BitsValue wraps a 16-bit flag field.
func BitsValue(v uint16) Value {
	return Value{typ: DataBits, bits: v}
}

// Int16Value wraps a 16-bit signed integer.
func Int16Value(v int16) Value {
	return Value{typ: DataInt16, i16: v}
}

// Int32Value wraps a 32-bit signed integer.
func Int32Value(v int32) Value {
	return Value{typ: DataInt32, i32: v}
}

// Real32Value wraps a 32-bit real.
func Real32Value(v float32) Value {
	return Value{typ: DataReal32, f32: v}
}

// Real64Value wraps a 64-bit real.
func Real64Value(v float64) Value {
	return Value{typ: DataReal64, f64: v}
}

// StringValue wraps a string.
func StringValue(v string) Value {
	return Value{typ: DataStr, str: v}
}

// DataType returns the value's payload encoding.
func (v Value) DataType() DataType {
	return v.typ
}

// AsBits returns the flag-field value; ok is false when the value holds a
// different data type. The same contract applies to the other accessors.
func (v Value) AsBits() (uint16, bool) {
	return v.bits, v.typ == DataBits
}

// AsInt16 returns the 16-bit integer value.
func (v Value) AsInt16() (int16, bool) {
	return v.i16, v.typ == DataInt16
}

// AsInt32 returns the 32-bit integer value.
func (v Value) AsInt32() (int32, bool) {
	return v.i32, v.typ == DataInt32
}

// AsReal32 returns the 32-bit real value.
func (v Value) AsReal32() (float32, bool) {
	return v.f32, v.typ == DataReal32
}

// AsReal64 returns the 64-bit real value.
func (v Value) AsReal64() (float64, bool) {
	return v.f64, v.typ == DataReal64
}

// AsString returns the string value.
func (v Value) AsString() (string, bool) {
	return v.str, v.typ == DataStr
}
