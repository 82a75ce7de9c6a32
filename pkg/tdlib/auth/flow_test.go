package auth_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tderr"
	"go.mau.fi/gotdlib/pkg/tdjson"
	"go.mau.fi/gotdlib/pkg/tdlib"
	"go.mau.fi/gotdlib/pkg/tdlib/auth"
	"go.mau.fi/gotdlib/pkg/tdlib/tdmock"
)

func newTestFlow(t *testing.T, a auth.Authenticator) (*tdmock.Mock, *tdlib.Client, *auth.Flow) {
	mock := tdmock.New(t)
	mux := tdlib.NewMux(mock, tdlib.MuxOptions{
		Logger:         zap.NewNop(),
		ReceiveTimeout: 10 * time.Millisecond,
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- mux.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		require.NoError(t, mux.Close())
	})

	flow := auth.NewFlow(a, auth.Options{Logger: zap.NewNop()})
	d := tdapi.NewUpdateDispatcher()
	d.OnAuthorizationState(flow.OnUpdate)
	client, err := mux.NewClient(ctx, tdlib.Options{UpdateHandler: d})
	require.NoError(t, err)
	return mock, client, flow
}

// moveTo replies ok after announcing the next authorization state, in the
// order TDLib does it.
func moveTo(mock *tdmock.Mock, state tdapi.AuthorizationStateClass) tdmock.HandlerFunc {
	return func(clientID int32, request []byte) (tdjson.Object, error) {
		mock.PushUpdate(clientID, &tdapi.UpdateAuthorizationState{AuthorizationState: state})
		return &tdapi.Ok{}, nil
	}
}

func requestField(t *testing.T, request []byte, field string) any {
	var m map[string]any
	require.NoError(t, json.Unmarshal(request, &m))
	return m[field]
}

func TestFlow(t *testing.T) {
	params := tdapi.NewSetTdlibParametersRequestBuilder().APIID(1).APIHash("hash").Build()
	var codes []string
	a := auth.Constant(params, "+10000000000", "hunter2", auth.CodeAuthenticatorFunc(
		func(ctx context.Context, info *tdapi.AuthenticationCodeInfo) (string, error) {
			assert.Equal(t, "+10000000000", info.PhoneNumber)
			if len(codes) == 0 {
				codes = append(codes, "11111")
			} else {
				codes = append(codes, "22222")
			}
			return codes[len(codes)-1], nil
		},
	))
	mock, client, flow := newTestFlow(t, a)
	codeInfo := &tdapi.AuthenticationCodeInfo{
		PhoneNumber: "+10000000000",
		Type:        &tdapi.AuthenticationCodeTypeSMS{Length: 5},
		Timeout:     60,
	}

	mock.ExpectCall(tdapi.GetAuthorizationStateRequestTypeName).
		ThenResult(&tdapi.AuthorizationStateWaitTdlibParameters{}).
		ExpectCall(tdapi.SetTdlibParametersRequestTypeName).
		ThenFunc(func(clientID int32, request []byte) (tdjson.Object, error) {
			assert.Equal(t, "hash", requestField(t, request, "api_hash"))
			return moveTo(mock, &tdapi.AuthorizationStateWaitPhoneNumber{})(clientID, request)
		}).
		ExpectCall(tdapi.SetAuthenticationPhoneNumberRequestTypeName).
		ThenFunc(func(clientID int32, request []byte) (tdjson.Object, error) {
			assert.Equal(t, "+10000000000", requestField(t, request, "phone_number"))
			return moveTo(mock, &tdapi.AuthorizationStateWaitCode{CodeInfo: codeInfo})(clientID, request)
		}).
		ExpectCall(tdapi.CheckAuthenticationCodeRequestTypeName).
		ThenErr(400, "PHONE_CODE_INVALID").
		ExpectCall(tdapi.CheckAuthenticationCodeRequestTypeName).
		ThenFunc(func(clientID int32, request []byte) (tdjson.Object, error) {
			assert.Equal(t, "22222", requestField(t, request, "code"))
			return moveTo(mock, &tdapi.AuthorizationStateWaitPassword{PasswordHint: "usual"})(clientID, request)
		}).
		ExpectCall(tdapi.CheckAuthenticationPasswordRequestTypeName).
		ThenFunc(func(clientID int32, request []byte) (tdjson.Object, error) {
			assert.Equal(t, "hunter2", requestField(t, request, "password"))
			return moveTo(mock, &tdapi.AuthorizationStateReady{})(clientID, request)
		})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, flow.Run(ctx, client.API()))
	assert.Equal(t, []string{"11111", "22222"}, codes)
	assert.Empty(t, mock.Remaining())
}

func TestFlowAlreadyReady(t *testing.T) {
	mock, client, flow := newTestFlow(t, auth.Constant(nil, "", "", nil))
	mock.ExpectCall(tdapi.GetAuthorizationStateRequestTypeName).ThenResult(&tdapi.AuthorizationStateReady{})
	require.NoError(t, flow.Run(context.Background(), client.API()))
}

func TestFlowErrors(t *testing.T) {
	t.Run("NoPassword", func(t *testing.T) {
		mock, client, flow := newTestFlow(t, auth.Constant(nil, "", "", nil))
		mock.ExpectCall(tdapi.GetAuthorizationStateRequestTypeName).
			ThenResult(&tdapi.AuthorizationStateWaitPassword{})
		err := flow.Run(context.Background(), client.API())
		require.ErrorIs(t, err, auth.ErrPasswordNotProvided)
	})
	t.Run("TooManyAttempts", func(t *testing.T) {
		mock, client, flow := newTestFlow(t, auth.Constant(nil, "", "wrong", nil))
		mock.ExpectCall(tdapi.GetAuthorizationStateRequestTypeName).
			ThenResult(&tdapi.AuthorizationStateWaitPassword{}).
			ExpectCall(tdapi.CheckAuthenticationPasswordRequestTypeName).ThenErr(400, "PASSWORD_HASH_INVALID").
			ExpectCall(tdapi.CheckAuthenticationPasswordRequestTypeName).ThenErr(400, "PASSWORD_HASH_INVALID").
			ExpectCall(tdapi.CheckAuthenticationPasswordRequestTypeName).ThenErr(400, "PASSWORD_HASH_INVALID")
		err := flow.Run(context.Background(), client.API())
		require.ErrorIs(t, err, auth.ErrTooManyAttempts)
	})
	t.Run("Closed", func(t *testing.T) {
		mock, client, flow := newTestFlow(t, auth.Constant(nil, "", "", nil))
		mock.ExpectCall(tdapi.GetAuthorizationStateRequestTypeName).
			ThenResult(&tdapi.AuthorizationStateClosed{})
		err := flow.Run(context.Background(), client.API())
		require.ErrorIs(t, err, auth.ErrClosed)
	})
	t.Run("TDLibError", func(t *testing.T) {
		mock, client, flow := newTestFlow(t, auth.Constant(nil, "+1", "", nil))
		mock.ExpectCall(tdapi.GetAuthorizationStateRequestTypeName).
			ThenResult(&tdapi.AuthorizationStateWaitPhoneNumber{}).
			ExpectCall(tdapi.SetAuthenticationPhoneNumberRequestTypeName).
			ThenErr(400, "PHONE_NUMBER_INVALID")
		err := flow.Run(context.Background(), client.API())
		require.True(t, tderr.Is(err, "PHONE_NUMBER_INVALID"))
		require.False(t, auth.IsUnauthorized(err))
	})
	t.Run("Context", func(t *testing.T) {
		mock, client, flow := newTestFlow(t, auth.Constant(nil, "", "", nil))
		mock.ExpectCall(tdapi.GetAuthorizationStateRequestTypeName).
			ThenResult(&tdapi.AuthorizationStateLoggingOut{})
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		require.ErrorIs(t, flow.Run(ctx, client.API()), context.DeadlineExceeded)
	})
}

func TestFlowDeduplicatesStates(t *testing.T) {
	phones := 0
	a := auth.Constant(nil, "+1", "", nil)
	mock, client, flow := newTestFlow(t, phoneCounter{Authenticator: a, n: &phones})
	mock.ExpectCall(tdapi.GetAuthorizationStateRequestTypeName).
		ThenFunc(func(clientID int32, request []byte) (tdjson.Object, error) {
			// The same state arrives as an update before the reply.
			mock.PushUpdate(clientID, &tdapi.UpdateAuthorizationState{
				AuthorizationState: &tdapi.AuthorizationStateWaitPhoneNumber{},
			})
			return &tdapi.AuthorizationStateWaitPhoneNumber{}, nil
		}).
		ExpectCall(tdapi.SetAuthenticationPhoneNumberRequestTypeName).
		ThenFunc(moveTo(mock, &tdapi.AuthorizationStateReady{}))
	require.NoError(t, flow.Run(context.Background(), client.API()))
	assert.Equal(t, 1, phones)
}

type phoneCounter struct {
	auth.Authenticator
	n *int
}

func (p phoneCounter) Phone(ctx context.Context) (string, error) {
	*p.n++
	return p.Authenticator.Phone(ctx)
}

func TestParameters(t *testing.T) {
	const config = `
api_id: 12345
api_hash: 0123456789abcdef
database_directory: /var/lib/tdlib
use_message_database: true
database_encryption_key: c2VjcmV0
device_info:
    device_model: gotdlib
    app_version: 0.1.0
    system_lang_code: en
`
	var p auth.Parameters
	require.NoError(t, yaml.Unmarshal([]byte(config), &p))
	require.NoError(t, p.Validate())

	req := p.Request()
	assert.Equal(t, int32(12345), req.APIID)
	assert.Equal(t, "0123456789abcdef", req.APIHash)
	assert.Equal(t, "/var/lib/tdlib", req.DatabaseDirectory)
	assert.True(t, req.UseMessageDatabase)
	assert.Equal(t, []byte("secret"), req.DatabaseEncryptionKey)
	assert.Equal(t, "gotdlib", req.DeviceModel)
	assert.Equal(t, "en", req.SystemLanguageCode)
	assert.NotEmpty(t, req.Extra)

	p.APIHash = ""
	assert.Error(t, p.Validate())
	p.APIHash = "x"
	p.DatabaseEncryptionKey = "%%%"
	assert.Error(t, p.Validate())
}
