package tdjson

import (
	"github.com/google/uuid"
)

// Meta is the envelope shared by every TDLib object.
type Meta struct {
	// Extra is the correlation identifier echoed back by TDLib in the response.
	Extra string
	// ClientID identifies the TDLib client instance the object belongs to.
	ClientID int32
}

// Envelope returns m itself, so that embedding Meta satisfies Object.
func (m *Meta) Envelope() *Meta {
	return m
}

// NewMeta returns an envelope with a fresh @extra.
func NewMeta() Meta {
	return Meta{Extra: NewExtra()}
}

// NewExtra generates a random @extra value.
func NewExtra() string {
	return uuid.NewString()
}
