// Package auth drives the TDLib authorization state machine.
package auth

import (
	"go.mau.fi/gotdlib/pkg/tderr"
)

// IsUnauthorized reports whether err is any 401 UNAUTHORIZED error.
//
// https://core.telegram.org/api/errors#401-unauthorized
func IsUnauthorized(err error) bool {
	return tderr.IsCode(err, 401)
}

// IsCodeInvalid reports whether err means that the authentication code was wrong.
func IsCodeInvalid(err error) bool {
	return tderr.Is(err, "PHONE_CODE_INVALID", "PHONE_CODE_EMPTY")
}

// IsPasswordInvalid reports whether err means that the 2FA password was wrong.
func IsPasswordInvalid(err error) bool {
	return tderr.Is(err, "PASSWORD_HASH_INVALID")
}
