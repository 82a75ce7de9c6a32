package tdjson

import (
	"github.com/go-faster/errors"
	"github.com/tidwall/gjson"
)

// Marshal encodes v to TDLib JSON.
func Marshal(v TDLibEncoder) ([]byte, error) {
	b := NewEncoder()
	if err := v.EncodeTDLibJSON(b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Unmarshal decodes TDLib JSON into v.
func Unmarshal(data []byte, v TDLibDecoder) error {
	return v.DecodeTDLibJSON(DecodeBytes(data))
}

// Header is the envelope of a raw TDLib JSON object.
type Header struct {
	Type     string
	Extra    string
	ClientID int32
}

// gjson treats a leading @ as a modifier, so envelope keys are escaped.
var peekPaths = [3]string{`\` + TypeField, `\` + ExtraField, `\` + ClientIDField}

// Peek extracts the envelope of a raw object without decoding the rest of it.
func Peek(data []byte) (Header, error) {
	if !gjson.ValidBytes(data) {
		return Header{}, errors.New("invalid json")
	}
	res := gjson.GetManyBytes(data, peekPaths[0], peekPaths[1], peekPaths[2])
	h := Header{
		Type:     res[0].String(),
		ClientID: int32(res[2].Int()),
	}
	if res[1].Exists() && res[1].Type != gjson.Null {
		h.Extra = res[1].String()
	}
	if h.Type == "" {
		return h, ErrTypeIDNotFound
	}
	return h, nil
}
