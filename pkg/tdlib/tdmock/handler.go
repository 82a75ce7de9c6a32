package tdmock

import "go.mau.fi/gotdlib/pkg/tdjson"

// Handler is a request handler. Request is the raw TDLib JSON sent by the client.
type Handler interface {
	Handle(clientID int32, request []byte) (tdjson.Object, error)
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(clientID int32, request []byte) (tdjson.Object, error)

// Handle implements Handler.
func (h HandlerFunc) Handle(clientID int32, request []byte) (tdjson.Object, error) {
	return h(clientID, request)
}
