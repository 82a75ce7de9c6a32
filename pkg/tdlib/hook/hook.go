// Package hook contains TDLib update hook middleware.
package hook

import (
	"context"

	"github.com/go-faster/errors"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tdjson"
	"go.mau.fi/gotdlib/pkg/tdlib"
)

// UpdateHook middleware is called for each update of a tdapi.Updates method
// result, like the one returned by getCurrentState.
//
// Function is called before invoker return. Returned error will be wrapped
// and returned as Invoke result.
type UpdateHook func(ctx context.Context, u tdapi.UpdateClass) error

// Handle implements tdlib.Middleware.
func (h UpdateHook) Handle(next tdapi.Invoker) tdlib.InvokeFunc {
	return func(ctx context.Context, input tdapi.Function, output tdjson.TDLibDecoder) error {
		if err := next.Invoke(ctx, input, output); err != nil {
			return err
		}
		if u, ok := output.(*tdapi.Updates); ok {
			for _, update := range u.Updates {
				if err := h(ctx, update); err != nil {
					return errors.Wrap(err, "hook")
				}
			}
		}

		return nil
	}
}
