// Package apperr defines the error taxonomy shared by services, repositories
// and the HTTP layer. Handlers map a Kind to a status code and never inspect
// anything else.
package apperr

import "errors"

type Kind int

const (
	Internal Kind = iota
	Validation
	Conflict
	Unauthorized
	Forbidden
	NotFound
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// KindOf classifies err. Anything that is not an *Error counts as Internal so
// that unexpected failures surface as 500 without leaking detail.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
