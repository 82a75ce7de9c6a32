package tdjson

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type testObject struct {
	Meta

	ID    int64
	Count int32
	Flag  bool
	Blob  []byte
}

func (*testObject) TypeName() string { return "testObject" }

func (o *testObject) EncodeTDLibJSON(b Encoder) error {
	b.ObjStart()
	b.PutID(o.TypeName())
	b.PutMeta(o.Meta)
	b.FieldStart("id")
	b.PutLong(o.ID)
	b.FieldStart("count")
	b.PutInt32(o.Count)
	b.FieldStart("flag")
	b.PutBool(o.Flag)
	b.FieldStart("blob")
	b.PutBytes(o.Blob)
	b.ObjEnd()
	return nil
}

func (o *testObject) DecodeTDLibJSON(b Decoder) error {
	return b.Obj(func(b Decoder, key []byte) error {
		var err error
		switch string(key) {
		case TypeField:
			return b.ConsumeID(o.TypeName())
		case ExtraField, ClientIDField:
			return b.DecodeMeta(key, &o.Meta)
		case "id":
			o.ID, err = b.Long()
		case "count":
			o.Count, err = b.Int32()
		case "flag":
			o.Flag, err = b.Bool()
		case "blob":
			o.Blob, err = b.Base64()
		default:
			return b.Skip()
		}
		return err
	})
}

var _ Object = (*testObject)(nil)

func TestLongBoundaries(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		in := &testObject{ID: v}
		data, err := Marshal(in)
		require.NoError(t, err)
		require.Contains(t, string(data), `"id":"`+FormatLong(v)+`"`)

		var out testObject
		require.NoError(t, Unmarshal(data, &out))
		require.Equal(t, v, out.ID)
	}
}

func TestLongFromNumber(t *testing.T) {
	var out testObject
	require.NoError(t, Unmarshal([]byte(`{"@type":"testObject","id":-42}`), &out))
	require.Equal(t, int64(-42), out.ID)

	require.Error(t, Unmarshal([]byte(`{"@type":"testObject","id":"12a"}`), &out))
}

func TestMetaRoundtrip(t *testing.T) {
	in := &testObject{Meta: Meta{Extra: "abc", ClientID: 3}, Count: 7, Flag: true, Blob: []byte{1, 2, 3}}
	data, err := Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"@type":"testObject","@extra":"abc","@client_id":3,"id":"0","count":7,"flag":true,"blob":"AQID"}`, string(data))

	var out testObject
	require.NoError(t, Unmarshal(data, &out))
	require.Equal(t, in, &out)
	require.Equal(t, "abc", out.Envelope().Extra)
}

func TestNumericExtra(t *testing.T) {
	var out testObject
	require.NoError(t, Unmarshal([]byte(`{"@type":"testObject","@extra":1234}`), &out))
	require.Equal(t, "1234", out.Extra)
}

func TestEmptyMetaOmitted(t *testing.T) {
	data, err := Marshal(&testObject{})
	require.NoError(t, err)
	require.NotContains(t, string(data), ExtraField)
	require.NotContains(t, string(data), ClientIDField)
}

func TestFindTypeID(t *testing.T) {
	d := DecodeBytes([]byte(`{"id":"1","@type":"testObject","count":1}`))
	id, err := d.FindTypeID()
	require.NoError(t, err)
	require.Equal(t, "testObject", id)

	// FindTypeID must not consume input.
	var out testObject
	require.NoError(t, out.DecodeTDLibJSON(d))
	require.Equal(t, int64(1), out.ID)
	require.Equal(t, int32(1), out.Count)

	_, err = DecodeBytes([]byte(`{"id":"1"}`)).FindTypeID()
	require.ErrorIs(t, err, ErrTypeIDNotFound)
}

func TestConsumeIDMismatch(t *testing.T) {
	var out testObject
	err := Unmarshal([]byte(`{"@type":"otherObject"}`), &out)
	var idErr *UnexpectedIDError
	require.ErrorAs(t, err, &idErr)
	require.Equal(t, "otherObject", idErr.ID)
}

func TestPeek(t *testing.T) {
	h, err := Peek([]byte(`{"@type":"ok","@extra":"x-1","@client_id":2}`))
	require.NoError(t, err)
	require.Equal(t, Header{Type: "ok", Extra: "x-1", ClientID: 2}, h)

	h, err = Peek([]byte(`{"@type":"updateOption","name":"version"}`))
	require.NoError(t, err)
	require.Empty(t, h.Extra)

	_, err = Peek([]byte(`{"name":"version"}`))
	require.ErrorIs(t, err, ErrTypeIDNotFound)

	_, err = Peek([]byte(`{"@type":`))
	require.Error(t, err)
}

func TestNewExtra(t *testing.T) {
	a, b := NewMeta(), NewMeta()
	require.NotEqual(t, a.Extra, b.Extra)
	_, err := uuid.Parse(a.Extra)
	require.NoError(t, err)
}
