package types

import (
	"errors"
	"fmt"
)

// ErrMalformed marks request bodies that do not decode into the expected shape.
var ErrMalformed = errors.New("malformed request")

// Item is a key/name pair managed by the store.
type Item struct {
	Index string `json:"index"`
	Name  string `json:"name"`
}

// Greeting is the body of the root endpoint.
type Greeting struct {
	Hello string `json:"Hello"`
}

// ItemResponse is the body of a successful item lookup.
type ItemResponse struct {
	Item string `json:"item"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Ok      bool   `json:"ok"`
	ErrCode string `json:"err_code"`
	ErrMsg  string `json:"err_msg"`
	Key     string `json:"key,omitempty"`
}

// MalformedError describes why a body was rejected. Field is empty when the
// body as a whole could not be decoded.
type MalformedError struct {
	Field  string
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", ErrMalformed, e.Reason)
	}
	return fmt.Sprintf("%v: field %q %s", ErrMalformed, e.Field, e.Reason)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}
