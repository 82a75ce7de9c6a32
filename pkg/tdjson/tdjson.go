// Package tdjson implements the TDLib JSON envelope encoding and decoding.
package tdjson

// Envelope keys used by TDLib on top of schema fields.
const (
	TypeField     = "@type"
	ExtraField    = "@extra"
	ClientIDField = "@client_id"
)

// TDLibEncoder can be encoded to TDLib JSON.
type TDLibEncoder interface {
	EncodeTDLibJSON(b Encoder) error
}

// TDLibDecoder can be decoded from TDLib JSON.
type TDLibDecoder interface {
	DecodeTDLibJSON(b Decoder) error
}

// Object is a TDLib schema object.
type Object interface {
	TDLibEncoder
	TDLibDecoder
	// TypeName returns the value of the @type field.
	TypeName() string
	// Envelope returns the @extra/@client_id envelope of the object.
	Envelope() *Meta
}
