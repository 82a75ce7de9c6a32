package auth

import (
	"context"

	"go.mau.fi/gotdlib/pkg/tdapi"
)

// CodeAuthenticator asks for the authentication code.
type CodeAuthenticator interface {
	Code(ctx context.Context, info *tdapi.AuthenticationCodeInfo) (string, error)
}

// CodeAuthenticatorFunc is functional wrapper for CodeAuthenticator.
type CodeAuthenticatorFunc func(ctx context.Context, info *tdapi.AuthenticationCodeInfo) (string, error)

// Code implements CodeAuthenticator interface.
func (c CodeAuthenticatorFunc) Code(ctx context.Context, info *tdapi.AuthenticationCodeInfo) (string, error) {
	return c(ctx, info)
}

// Authenticator provides everything the authorization flow asks for.
type Authenticator interface {
	// Parameters returns the parameters of the TDLib instance.
	Parameters(ctx context.Context) (*tdapi.SetTdlibParametersRequest, error)
	// Phone returns the phone number in international format.
	Phone(ctx context.Context) (string, error)
	// Password returns the 2FA password. Hint is the hint set by the user.
	Password(ctx context.Context, hint string) (string, error)
	CodeAuthenticator
}

type constantAuth struct {
	params          *tdapi.SetTdlibParametersRequest
	phone, password string
	CodeAuthenticator
}

func (c constantAuth) Parameters(ctx context.Context) (*tdapi.SetTdlibParametersRequest, error) {
	return c.params, nil
}

func (c constantAuth) Phone(ctx context.Context) (string, error) {
	return c.phone, nil
}

func (c constantAuth) Password(ctx context.Context, hint string) (string, error) {
	if c.password == "" {
		return "", ErrPasswordNotProvided
	}
	return c.password, nil
}

// Constant creates an Authenticator with constant answers. The code is
// still asked for with code.
func Constant(params *tdapi.SetTdlibParametersRequest, phone, password string, code CodeAuthenticator) Authenticator {
	return constantAuth{
		params:            params,
		phone:             phone,
		password:          password,
		CodeAuthenticator: code,
	}
}
