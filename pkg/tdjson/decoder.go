package tdjson

import (
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ErrTypeIDNotFound means that @type field was not found in the object.
var ErrTypeIDNotFound = errors.New("@type not found")

// UnexpectedIDError is returned when the decoded @type differs from the expected one.
type UnexpectedIDError struct {
	Expected string
	ID       string
}

// Error implements error.
func (e *UnexpectedIDError) Error() string {
	return "unexpected @type " + strconv.Quote(e.ID) + ", expected " + strconv.Quote(e.Expected)
}

// Decoder is a TDLib JSON decoder.
type Decoder struct {
	*jx.Decoder
}

// DecodeBytes creates a Decoder over data.
func DecodeBytes(data []byte) Decoder {
	return Decoder{Decoder: jx.DecodeBytes(data)}
}

// FindTypeID returns the @type of the next object without consuming it.
func (b Decoder) FindTypeID() (string, error) {
	var typ string
	if err := b.Capture(func(d *jx.Decoder) error {
		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if typ != "" || string(key) != TypeField {
				return d.Skip()
			}
			v, err := d.Str()
			if err != nil {
				return err
			}
			typ = v
			return nil
		})
	}); err != nil {
		return "", err
	}
	if typ == "" {
		return "", ErrTypeIDNotFound
	}
	return typ, nil
}

// ConsumeID reads the value of a @type field and checks it against id.
func (b Decoder) ConsumeID(id string) error {
	v, err := b.Str()
	if err != nil {
		return err
	}
	if v != id {
		return &UnexpectedIDError{Expected: id, ID: v}
	}
	return nil
}

// Obj decodes an object, calling cb for every key.
func (b Decoder) Obj(cb func(d Decoder, key []byte) error) error {
	return b.ObjBytes(func(d *jx.Decoder, key []byte) error {
		return cb(Decoder{Decoder: d}, key)
	})
}

// Arr decodes an array, calling cb for every element.
func (b Decoder) Arr(cb func(d Decoder) error) error {
	return b.Decoder.Arr(func(d *jx.Decoder) error {
		return cb(Decoder{Decoder: d})
	})
}

// IsNull reports whether the next value is null.
func (b Decoder) IsNull() bool {
	return b.Next() == jx.Null
}

// DecodeMeta decodes one of the envelope fields into m.
func (b Decoder) DecodeMeta(key []byte, m *Meta) error {
	switch string(key) {
	case ExtraField:
		switch b.Next() {
		case jx.String:
			v, err := b.Str()
			if err != nil {
				return errors.Wrap(err, "@extra")
			}
			m.Extra = v
		case jx.Number:
			v, err := b.Num()
			if err != nil {
				return errors.Wrap(err, "@extra")
			}
			m.Extra = v.String()
		default:
			return b.Skip()
		}
	case ClientIDField:
		v, err := b.Int32()
		if err != nil {
			return errors.Wrap(err, "@client_id")
		}
		m.ClientID = v
	default:
		return b.Skip()
	}
	return nil
}

// Int53 decodes an int53 value.
func (b Decoder) Int53() (int64, error) {
	return b.Long()
}

// Long decodes an int64 sent either as a JSON string or as a number.
func (b Decoder) Long() (int64, error) {
	switch b.Next() {
	case jx.String:
		s, err := b.Str()
		if err != nil {
			return 0, err
		}
		return ParseLong(s)
	default:
		return b.Int64()
	}
}

// Double decodes a double.
func (b Decoder) Double() (float64, error) {
	return b.Float64()
}

// ParseLong parses the TDLib string representation of an int64.
func ParseLong(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse int64 %q", s)
	}
	return v, nil
}

// UnknownTypeError is returned when a polymorphic value has a @type that is not
// a constructor of its class.
type UnknownTypeError struct {
	Class string
	Type  string
}

// Error implements error.
func (e *UnknownTypeError) Error() string {
	return "unknown @type " + strconv.Quote(e.Type) + " for class " + e.Class
}
