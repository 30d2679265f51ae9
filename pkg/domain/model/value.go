package model

// NullValueSentinel is the wire representation of a Firestore null. The REST
// API encodes null as the enum string "NULL_VALUE" rather than a JSON null.
const NullValueSentinel = "NULL_VALUE"

// Value represents one Firestore REST field value. Exactly one of the tag
// fields is set per value; a Value with no tag set came from a wire tag this
// tool does not handle (referenceValue, geoPointValue, bytesValue, ...).
type Value struct {
	NullValue      *string     `json:"nullValue,omitempty"`
	BooleanValue   *bool       `json:"booleanValue,omitempty"`
	IntegerValue   *string     `json:"integerValue,omitempty"`
	DoubleValue    *float64    `json:"doubleValue,omitempty"`
	TimestampValue *string     `json:"timestampValue,omitempty"`
	StringValue    *string     `json:"stringValue,omitempty"`
	ArrayValue     *ArrayValue `json:"arrayValue,omitempty"`
	MapValue       *MapValue   `json:"mapValue,omitempty"`
}

// ArrayValue holds an ordered sequence of values.
type ArrayValue struct {
	Values []Value `json:"values,omitempty"`
}

// MapValue holds a nested field map.
type MapValue struct {
	Fields map[string]Value `json:"fields,omitempty"`
}

// NullValueOf returns a null-tagged value.
func NullValueOf() Value {
	s := NullValueSentinel
	return Value{NullValue: &s}
}

// BooleanValueOf returns a boolean-tagged value.
func BooleanValueOf(b bool) Value {
	return Value{BooleanValue: &b}
}

// IntegerValueOf returns an integer-tagged value. The wire format carries
// integers as decimal strings.
func IntegerValueOf(s string) Value {
	return Value{IntegerValue: &s}
}

// DoubleValueOf returns a double-tagged value.
func DoubleValueOf(f float64) Value {
	return Value{DoubleValue: &f}
}

// TimestampValueOf returns a timestamp-tagged value.
func TimestampValueOf(s string) Value {
	return Value{TimestampValue: &s}
}

// StringValueOf returns a string-tagged value.
func StringValueOf(s string) Value {
	return Value{StringValue: &s}
}

// IsZero reports whether no tag is set.
func (v Value) IsZero() bool {
	return v.NullValue == nil &&
		v.BooleanValue == nil &&
		v.IntegerValue == nil &&
		v.DoubleValue == nil &&
		v.TimestampValue == nil &&
		v.StringValue == nil &&
		v.ArrayValue == nil &&
		v.MapValue == nil
}
