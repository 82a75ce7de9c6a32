package tdjson

import (
	"strconv"

	"github.com/go-faster/jx"
)

// Encoder is a TDLib JSON encoder.
type Encoder struct {
	*jx.Encoder
}

// NewEncoder creates a new Encoder with an empty buffer.
func NewEncoder() Encoder {
	return Encoder{Encoder: &jx.Encoder{}}
}

// PutID writes the @type field.
func (b Encoder) PutID(typeID string) {
	b.FieldStart(TypeField)
	b.Str(typeID)
}

// PutMeta writes the non-empty envelope fields.
func (b Encoder) PutMeta(m Meta) {
	if m.Extra != "" {
		b.FieldStart(ExtraField)
		b.Str(m.Extra)
	}
	if m.ClientID != 0 {
		b.FieldStart(ClientIDField)
		b.Int32(m.ClientID)
	}
}

// PutInt32 writes an int32 as a JSON number.
func (b Encoder) PutInt32(v int32) {
	b.Int32(v)
}

// PutInt53 writes an int53 as a JSON number.
func (b Encoder) PutInt53(v int64) {
	b.Int64(v)
}

// PutLong writes an int64 as a JSON string, which is how TDLib transfers 64-bit values.
func (b Encoder) PutLong(v int64) {
	b.Str(FormatLong(v))
}

// PutDouble writes a double.
func (b Encoder) PutDouble(v float64) {
	b.Float64(v)
}

// PutString writes a string.
func (b Encoder) PutString(s string) {
	b.Str(s)
}

// PutBytes writes bytes as base64 string.
func (b Encoder) PutBytes(v []byte) {
	b.Base64(v)
}

// PutBool writes a boolean.
func (b Encoder) PutBool(v bool) {
	b.Bool(v)
}

// FormatLong converts an int64 to its TDLib string representation.
func FormatLong(v int64) string {
	return strconv.FormatInt(v, 10)
}
