// Package tdapi contains the TDLib API types generated from the TL schema.
//
// Every schema object embeds tdjson.Meta and can be encoded to and decoded from
// TDLib JSON. Methods are invoked through Client, updates are routed by
// UpdateDispatcher.
package tdapi

//go:generate go run go.mau.fi/gotdlib/pkg/cmd/tdgen --clean --package tdapi --target . --schema ../../_schema/td_api.tl
