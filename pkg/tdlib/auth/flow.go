// gotdlib - Typed Go bindings for the TDLib JSON interface.
// Copyright (C) 2026 Sumner Evans
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package auth

import (
	"bytes"
	"context"
	"strconv"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tdjson"
)

var (
	// ErrPasswordNotProvided means that the account has 2FA enabled but the
	// authenticator has no password.
	ErrPasswordNotProvided = errors.New("password requested but not provided")
	// ErrClosed means that the TDLib instance was closed during the flow.
	ErrClosed = errors.New("authorization state closed")
	// ErrTooManyAttempts means that the code or the password was wrong too many times.
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// Options of Flow.
type Options struct {
	// Logger is instance of zap.Logger. No logs by default.
	Logger *zap.Logger
	// PhoneSettings are sent with the phone number.
	PhoneSettings *tdapi.PhoneNumberAuthenticationSettings
	// MaxAttempts limits how many times a wrong code or password is asked
	// again. Defaults to 3.
	MaxAttempts int
}

func (opts *Options) setDefaults() {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = 3
	}
}

// Flow answers authorization states until the client is ready.
//
// Authorization state updates must be fed to OnUpdate, usually by registering
// it in the update dispatcher of the client:
//
//	flow := auth.NewFlow(authenticator, auth.Options{})
//	dispatcher.OnAuthorizationState(flow.OnUpdate)
type Flow struct {
	auth   Authenticator
	opts   Options
	log    *zap.Logger
	states chan tdapi.AuthorizationStateClass
}

// NewFlow creates a new Flow.
func NewFlow(auth Authenticator, opts Options) *Flow {
	opts.setDefaults()
	return &Flow{
		auth:   auth,
		opts:   opts,
		log:    opts.Logger,
		states: make(chan tdapi.AuthorizationStateClass, 1),
	}
}

// OnUpdate implements tdapi.AuthorizationStateHandler. Only the latest state
// is kept if Run is slow to pick it up.
func (f *Flow) OnUpdate(ctx context.Context, u *tdapi.UpdateAuthorizationState) error {
	if u.AuthorizationState == nil {
		return nil
	}
	for {
		select {
		case f.states <- u.AuthorizationState:
			return nil
		default:
		}
		select {
		case <-f.states:
		default:
		}
	}
}

// Run performs authorization. It returns nil once the state is
// authorizationStateReady.
func (f *Flow) Run(ctx context.Context, api *tdapi.Client) error {
	state, err := api.GetAuthorizationState(ctx)
	if err != nil {
		return errors.Wrap(err, "get authorization state")
	}
	var last []byte
	for {
		// The same state may come both as the reply and as an update.
		if key := stateKey(state); !bytes.Equal(key, last) {
			last = key
			f.log.Debug("Handling authorization state", zap.String("state", state.TypeName()))
			done, err := f.step(ctx, api, state)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
		select {
		case state = <-f.states:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func stateKey(state tdapi.AuthorizationStateClass) []byte {
	key := []byte(state.TypeName())
	switch s := state.(type) {
	case *tdapi.AuthorizationStateWaitCode:
		if data, err := tdjson.Marshal(s.CodeInfo); err == nil {
			key = append(key, data...)
		}
	case *tdapi.AuthorizationStateWaitPassword:
		key = strconv.AppendQuote(key, s.PasswordHint)
	}
	return key
}

func (f *Flow) step(ctx context.Context, api *tdapi.Client, state tdapi.AuthorizationStateClass) (bool, error) {
	switch s := state.(type) {
	case *tdapi.AuthorizationStateWaitTdlibParameters:
		params, err := f.auth.Parameters(ctx)
		if err != nil {
			return false, errors.Wrap(err, "get parameters")
		}
		if err := api.SetTdlibParameters(ctx, params); err != nil {
			return false, errors.Wrap(err, "set parameters")
		}
	case *tdapi.AuthorizationStateWaitPhoneNumber:
		phone, err := f.auth.Phone(ctx)
		if err != nil {
			return false, errors.Wrap(err, "get phone")
		}
		if err := api.SetAuthenticationPhoneNumber(ctx, &tdapi.SetAuthenticationPhoneNumberRequest{
			PhoneNumber: phone,
			Settings:    f.opts.PhoneSettings,
		}); err != nil {
			return false, errors.Wrap(err, "set phone number")
		}
	case *tdapi.AuthorizationStateWaitCode:
		if err := f.retry(IsCodeInvalid, func() error {
			code, err := f.auth.Code(ctx, s.CodeInfo)
			if err != nil {
				return errors.Wrap(err, "get code")
			}
			return api.CheckAuthenticationCode(ctx, &tdapi.CheckAuthenticationCodeRequest{Code: code})
		}); err != nil {
			return false, errors.Wrap(err, "check code")
		}
	case *tdapi.AuthorizationStateWaitPassword:
		if err := f.retry(IsPasswordInvalid, func() error {
			password, err := f.auth.Password(ctx, s.PasswordHint)
			if err != nil {
				return errors.Wrap(err, "get password")
			}
			return api.CheckAuthenticationPassword(ctx, &tdapi.CheckAuthenticationPasswordRequest{Password: password})
		}); err != nil {
			return false, errors.Wrap(err, "check password")
		}
	case *tdapi.AuthorizationStateReady:
		return true, nil
	case *tdapi.AuthorizationStateLoggingOut, *tdapi.AuthorizationStateClosing:
		// Wait for the next state.
	case *tdapi.AuthorizationStateClosed:
		return false, ErrClosed
	default:
		return false, errors.Errorf("unsupported authorization state %s", state.TypeName())
	}
	return false, nil
}

func (f *Flow) retry(invalid func(error) bool, fn func() error) error {
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !invalid(err) {
			return err
		}
		f.log.Debug("Invalid input, asking again", zap.Int("attempt", attempt), zap.Error(err))
		if attempt >= f.opts.MaxAttempts {
			return errors.Wrap(ErrTooManyAttempts, err.Error())
		}
	}
}
