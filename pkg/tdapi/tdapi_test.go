package tdapi

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/rogpeppe/go-internal/txtar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/gotdlib/pkg/tdjson"
)

func TestGoldenObjects(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/objects.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, archive.Files)

	for _, f := range archive.Files {
		t.Run(f.Name, func(t *testing.T) {
			obj, err := DecodeObject(tdjson.DecodeBytes(f.Data))
			require.NoError(t, err)

			out, err := tdjson.Marshal(obj)
			require.NoError(t, err)
			require.JSONEq(t, string(f.Data), string(out))

			h, err := tdjson.Peek(f.Data)
			require.NoError(t, err)
			assert.Equal(t, h.Type, obj.TypeName())
			assert.Equal(t, h.Extra, obj.Envelope().Extra)
			assert.Equal(t, h.ClientID, obj.Envelope().ClientID)
		})
	}
}

func TestConstructorsRoundTrip(t *testing.T) {
	for name, ctor := range TypesConstructorMap() {
		t.Run(name, func(t *testing.T) {
			v := ctor()
			require.Equal(t, name, v.TypeName())
			v.Envelope().Extra = "x"

			data, err := tdjson.Marshal(v)
			require.NoError(t, err)

			decoded, err := DecodeObject(tdjson.DecodeBytes(data))
			require.NoError(t, err)
			require.Equal(t, name, decoded.TypeName())

			again, err := tdjson.Marshal(decoded)
			require.NoError(t, err)
			require.JSONEq(t, string(data), string(again))
		})
	}
}

func TestClassConstructors(t *testing.T) {
	types := TypesConstructorMap()
	for class, names := range ClassConstructorsMap() {
		require.NotEmpty(t, names, class)
		for _, name := range names {
			_, ok := types[name]
			assert.True(t, ok, "%s: %s", class, name)
		}
	}
}

func TestBuilderExtra(t *testing.T) {
	a := NewGetChatRequestBuilder().ChatID(1).Build()
	b := NewGetChatRequestBuilder().ChatID(1).Build()
	require.NotEqual(t, a.Extra, b.Extra)
	for _, extra := range []string{a.Extra, b.Extra} {
		_, err := uuid.Parse(extra)
		require.NoError(t, err)
	}

	msg := NewSendMessageRequestBuilder().
		ChatID(10).
		ClientID(2).
		InputMessageContent(NewInputMessageTextBuilder().
			Text(NewFormattedTextBuilder().Text("hello").Build()).
			Build()).
		Build()
	assert.Equal(t, int64(10), msg.GetChatID())
	assert.Equal(t, int32(2), msg.ClientID)
	content, ok := msg.GetInputMessageContent().(*InputMessageText)
	require.True(t, ok)
	assert.Equal(t, "hello", content.GetText().GetText())
}

func TestLongBoundaries(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		in := &Message{MediaAlbumID: v}
		data, err := tdjson.Marshal(in)
		require.NoError(t, err)

		var out Message
		require.NoError(t, tdjson.Unmarshal(data, &out))
		assert.Equal(t, v, out.MediaAlbumID)

		opt := &OptionValueInteger{Value: v}
		data, err = tdjson.Marshal(opt)
		require.NoError(t, err)
		require.JSONEq(t, `{"@type":"optionValueInteger","value":"`+tdjson.FormatLong(v)+`"}`, string(data))
	}
}

func TestNilGetters(t *testing.T) {
	var m *Message
	assert.Zero(t, m.GetID())
	assert.Nil(t, m.GetContent())
}

func TestDecodeErrors(t *testing.T) {
	_, err := DecodeTDLibJSONChatAction(tdjson.DecodeBytes([]byte(`{"@type":"chatActionDancing"}`)))
	var unknown *tdjson.UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ChatAction", unknown.Class)
	assert.Equal(t, "chatActionDancing", unknown.Type)

	_, err = DecodeObject(tdjson.DecodeBytes([]byte(`{"@type":"noSuchType"}`)))
	require.ErrorAs(t, err, &unknown)

	var chat Chat
	err = tdjson.Unmarshal([]byte(`{"@type":"user"}`), &chat)
	var mismatch *tdjson.UnexpectedIDError
	require.ErrorAs(t, err, &mismatch)

	require.Error(t, tdjson.Unmarshal([]byte(`{"@type":"chat","id":`), &chat))

	action, err := DecodeTDLibJSONChatAction(tdjson.DecodeBytes([]byte(`null`)))
	require.NoError(t, err)
	require.Nil(t, action)
}

func TestBoxEncodeNil(t *testing.T) {
	var box ChatActionBox
	_, err := tdjson.Marshal(&box)
	require.Error(t, err)

	box.ChatAction = &ChatActionTyping{}
	data, err := tdjson.Marshal(&box)
	require.NoError(t, err)
	require.JSONEq(t, `{"@type":"chatActionTyping"}`, string(data))
}

func TestUpdateDispatcher(t *testing.T) {
	ctx := context.Background()
	d := NewUpdateDispatcher()

	var titles []string
	d.OnChatTitle(func(ctx context.Context, update *UpdateChatTitle) error {
		titles = append(titles, update.Title)
		return nil
	})
	var fallback []string
	d.OnFallback(func(ctx context.Context, update UpdateClass) error {
		fallback = append(fallback, update.TypeName())
		return nil
	})

	require.NoError(t, d.Handle(ctx, &UpdateChatTitle{ChatID: 1, Title: "news"}))
	require.NoError(t, d.Handle(ctx, &UpdateConnectionState{State: &ConnectionStateReady{}}))
	require.NoError(t, d.Handle(ctx, nil))

	assert.Equal(t, []string{"news"}, titles)
	assert.Equal(t, []string{UpdateConnectionStateTypeName}, fallback)
}

type replayInvoker struct {
	requests []string
	reply    string
}

func (r *replayInvoker) Invoke(ctx context.Context, input Function, output tdjson.TDLibDecoder) error {
	data, err := tdjson.Marshal(input)
	if err != nil {
		return err
	}
	r.requests = append(r.requests, string(data))
	return output.DecodeTDLibJSON(tdjson.DecodeBytes([]byte(r.reply)))
}

func TestClientMethods(t *testing.T) {
	ctx := context.Background()
	inv := &replayInvoker{reply: `{"@type":"optionValueString","value":"1.8.0"}`}
	client := NewClient(inv)
	require.Equal(t, inv, client.Invoker())

	value, err := client.GetOption(ctx, &GetOptionRequest{Name: "version"})
	require.NoError(t, err)
	require.Equal(t, "1.8.0", value.(*OptionValueString).Value)

	inv.reply = `{"@type":"ok"}`
	require.NoError(t, client.TestCallEmpty(ctx))

	inv.reply = `{"@type":"testInt","value":16}`
	res, err := client.TestSquareInt(ctx, &TestSquareIntRequest{X: 4})
	require.NoError(t, err)
	assert.Equal(t, int32(16), res.Value)

	require.Equal(t, []string{
		`{"@type":"getOption","name":"version"}`,
		`{"@type":"testCallEmpty"}`,
		`{"@type":"testSquareInt","x":4}`,
	}, inv.requests)
}
