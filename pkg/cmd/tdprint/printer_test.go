package main

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tdjson"
)

func recording(t *testing.T, objects ...tdjson.Object) []byte {
	var buf bytes.Buffer
	for _, o := range objects {
		data, err := tdjson.Marshal(o)
		require.NoError(t, err)
		buf.Write(data)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func Test_readAndPrint(t *testing.T) {
	input := recording(t,
		&tdapi.UpdateChatTitle{ChatID: -100, Title: "news"},
		&tdapi.Error{Code: 400, Message: "CHAT_NOT_FOUND"},
		&tdapi.AuthorizationStateWaitPhoneNumber{},
	)

	output := &bytes.Buffer{}
	require.NoError(t, NewPrinter(bytes.NewReader(input), formats("go")).Print(output))
	out := output.String()
	require.Contains(t, out, "UpdateChatTitle")
	require.Contains(t, out, "CHAT_NOT_FOUND")
	require.Contains(t, out, "AuthorizationStateWaitPhoneNumber")

	output.Reset()
	require.NoError(t, NewPrinter(bytes.NewReader(input), formats("json")).Print(output))
	require.Equal(t, string(input), output.String())
}

func TestPrintZstd(t *testing.T) {
	input := recording(t, &tdapi.UpdateChatTitle{ChatID: 1, Title: "compressed"})
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll(input, nil)
	require.NoError(t, enc.Close())

	output := &bytes.Buffer{}
	require.NoError(t, NewPrinter(bytes.NewReader(compressed), formats("json")).Print(output))
	require.Equal(t, string(input), output.String())
}

func TestPrintUnknown(t *testing.T) {
	input := []byte("{\"@type\":\"somethingNew\"}\n\n{\"@type\":\"ok\"}\n")

	output := &bytes.Buffer{}
	err := NewPrinter(bytes.NewReader(input), formats("json")).Print(output)
	require.ErrorContains(t, err, "line 1")

	output.Reset()
	require.NoError(t, NewPrinter(bytes.NewReader(input), formats("json")).SkipUnknown(true).Print(output))
	require.Equal(t, "{\"@type\":\"ok\"}\n", output.String())

	require.Nil(t, formats("yaml"))
}
