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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tdlib/auth"
)

// Authenticator asks for the login details in the terminal.
type Authenticator struct {
	params *tdapi.SetTdlibParametersRequest

	mu     sync.Mutex
	reader *bufio.Reader
	out    io.Writer
}

var _ auth.Authenticator = (*Authenticator)(nil)

func NewAuthenticator(params *tdapi.SetTdlibParametersRequest, in io.Reader, out io.Writer) *Authenticator {
	return &Authenticator{params: params, reader: bufio.NewReader(in), out: out}
}

func (a *Authenticator) prompt(question string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprint(a.out, question)
	raw, err := a.reader.ReadString('\n')
	if err != nil && (err != io.EOF || raw == "") {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (a *Authenticator) Parameters(ctx context.Context) (*tdapi.SetTdlibParametersRequest, error) {
	return a.params, nil
}

func (a *Authenticator) Phone(ctx context.Context) (string, error) {
	return a.prompt("Phone (include country code with +): ")
}

func (a *Authenticator) Password(ctx context.Context, hint string) (string, error) {
	if hint != "" {
		return a.prompt(fmt.Sprintf("Password (hint: %s): ", hint))
	}
	return a.prompt("Password: ")
}

func (a *Authenticator) Code(ctx context.Context, info *tdapi.AuthenticationCodeInfo) (string, error) {
	return a.prompt(fmt.Sprintf("Code (sent via %s): ", codeDelivery(info.GetType())))
}

func codeDelivery(typ tdapi.AuthenticationCodeTypeClass) string {
	switch typ.(type) {
	case *tdapi.AuthenticationCodeTypeTelegramMessage:
		return "Telegram"
	case *tdapi.AuthenticationCodeTypeSMS:
		return "SMS"
	case *tdapi.AuthenticationCodeTypeCall:
		return "phone call"
	default:
		return "unknown method"
	}
}
