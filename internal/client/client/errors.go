package client

import "errors"

// ErrUnexpectedResponse is returned when the backend answers with a payload
// that does not decode.
var ErrUnexpectedResponse = errors.New("unexpected response")
