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
	"fmt"
	"strconv"
	"strings"

	"go.mau.fi/gotdlib/pkg/tdapi"
)

// geoURI formats loc as an RFC 5870 geo URI.
func geoURI(loc *tdapi.Location) string {
	uri := "geo:" + formatCoordinate(loc.GetLatitude()) + "," + formatCoordinate(loc.GetLongitude())
	if acc := loc.GetHorizontalAccuracy(); acc > 0 {
		uri += ";u=" + formatCoordinate(acc)
	}
	return uri
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func senderString(sender tdapi.MessageSenderClass) string {
	switch s := sender.(type) {
	case *tdapi.MessageSenderUser:
		return fmt.Sprintf("user %d", s.UserID)
	case *tdapi.MessageSenderChat:
		return fmt.Sprintf("chat %d", s.ChatID)
	default:
		return "unknown sender"
	}
}

// contentSummary returns a single line describing message content.
func contentSummary(content tdapi.MessageContentClass) string {
	switch c := content.(type) {
	case *tdapi.MessageText:
		return strings.ReplaceAll(c.GetText().GetText(), "\n", " ")
	case *tdapi.MessageLocation:
		summary := "location " + geoURI(c.GetLocation())
		if c.LivePeriod > 0 {
			summary += fmt.Sprintf(" (live for %ds)", c.LivePeriod)
		}
		return summary
	case nil:
		return "<empty>"
	default:
		return "<" + c.TypeName() + ">"
	}
}

func messageSummary(msg *tdapi.Message) string {
	direction := "from " + senderString(msg.GetSenderID())
	if msg.GetIsOutgoing() {
		direction = "sent"
	}
	return fmt.Sprintf("[%d/%d] %s: %s", msg.GetChatID(), msg.GetID(), direction, contentSummary(msg.GetContent()))
}
