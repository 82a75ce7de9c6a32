package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/gotdlib/pkg/tdapi"
)

func TestGeoURI(t *testing.T) {
	assert.Equal(t, "geo:52.5,13.4", geoURI(&tdapi.Location{Latitude: 52.5, Longitude: 13.4}))
	assert.Equal(t, "geo:-33.8688,151.2093;u=15", geoURI(&tdapi.Location{
		Latitude:           -33.8688,
		Longitude:          151.2093,
		HorizontalAccuracy: 15,
	}))
	assert.Equal(t, "geo:0,0", geoURI(nil))
}

func TestMessageSummary(t *testing.T) {
	for _, tt := range []struct {
		name string
		msg  *tdapi.Message
		want string
	}{
		{
			name: "Text",
			msg: &tdapi.Message{
				ID:       10,
				ChatID:   -100,
				SenderID: &tdapi.MessageSenderUser{UserID: 7},
				Content:  &tdapi.MessageText{Text: &tdapi.FormattedText{Text: "hello\nworld"}},
			},
			want: "[-100/10] from user 7: hello world",
		},
		{
			name: "Location",
			msg: &tdapi.Message{
				ID:         11,
				ChatID:     5,
				IsOutgoing: true,
				Content: &tdapi.MessageLocation{
					Location:   &tdapi.Location{Latitude: 1.5, Longitude: 2},
					LivePeriod: 60,
				},
			},
			want: "[5/11] sent: location geo:1.5,2 (live for 60s)",
		},
		{
			name: "Unsupported",
			msg: &tdapi.Message{
				ID:       12,
				ChatID:   5,
				SenderID: &tdapi.MessageSenderChat{ChatID: 5},
				Content:  &tdapi.MessageUnsupported{},
			},
			want: "[5/12] from chat 5: <messageUnsupported>",
		},
		{
			name: "Empty",
			msg:  &tdapi.Message{ID: 13, ChatID: 5},
			want: "[5/13] from unknown sender: <empty>",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageSummary(tt.msg))
		})
	}
}

func TestAuthenticator(t *testing.T) {
	in := strings.NewReader("+10000000000\n 12345 \nhunter2")
	out := &bytes.Buffer{}
	params := tdapi.NewSetTdlibParametersRequestBuilder().APIID(1).Build()
	a := NewAuthenticator(params, in, out)
	ctx := context.Background()

	got, err := a.Parameters(ctx)
	require.NoError(t, err)
	assert.Same(t, params, got)

	phone, err := a.Phone(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+10000000000", phone)

	code, err := a.Code(ctx, &tdapi.AuthenticationCodeInfo{Type: &tdapi.AuthenticationCodeTypeSMS{Length: 5}})
	require.NoError(t, err)
	assert.Equal(t, "12345", code)

	password, err := a.Password(ctx, "usual")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", password)

	assert.Equal(t, "Phone (include country code with +): Code (sent via SMS): Password (hint: usual): ", out.String())

	_, err = a.Phone(ctx)
	assert.Error(t, err)
}
