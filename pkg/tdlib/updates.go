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

package tdlib

import (
	"time"

	"go.uber.org/zap"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tderr"
)

// intercept keeps client state in sync before the update reaches the handler.
func (c *Client) intercept(update tdapi.UpdateClass) {
	switch u := update.(type) {
	case *tdapi.UpdateAuthorizationState:
		c.state.Store(u)
		c.log.Debug("Authorization state changed", zap.String("state", stateName(u.AuthorizationState)))
	case *tdapi.UpdateUser:
		if self := c.self.Load(); self != nil && u.User != nil && u.User.ID == self.ID {
			c.self.Store(u.User)
		}
	}
}

// isClosedState reports whether update is the last one TDLib sends for an instance.
func isClosedState(update tdapi.UpdateClass) bool {
	u, ok := update.(*tdapi.UpdateAuthorizationState)
	if !ok {
		return false
	}
	_, ok = u.AuthorizationState.(*tdapi.AuthorizationStateClosed)
	return ok
}

func stateName(state tdapi.AuthorizationStateClass) string {
	if state == nil {
		return ""
	}
	return state.TypeName()
}

// enqueue waits for room in the update queue for at most updateTimeout.
func (c *Client) enqueue(update tdapi.UpdateClass) error {
	select {
	case <-c.done:
		return tderr.ErrClosed
	default:
	}
	timer := time.NewTimer(c.updateTimeout)
	defer timer.Stop()
	select {
	case c.updates <- update:
		return nil
	case <-c.done:
		return tderr.ErrClosed
	case <-timer.C:
		return tderr.ErrTimeout
	}
}

func (c *Client) runUpdates() error {
	for {
		select {
		case <-c.done:
			return nil
		case update := <-c.updates:
			if err := c.handler.Handle(c.ctx, update); err != nil {
				c.log.Warn("Update handler failed", zap.String("type", update.TypeName()), zap.Error(err))
				c.onError(err)
			}
			if isClosedState(update) {
				// Nothing will reply anymore. shutdown waits for this goroutine.
				go func() {
					if err := c.shutdown(); err != nil {
						c.onError(err)
					}
				}()
				return nil
			}
		}
	}
}
