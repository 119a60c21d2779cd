// Package apperr classifies failures so controllers can map them to HTTP
// statuses in one place: configuration -> 500, not-found -> 404,
// upstream/storage -> 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindConfig Kind = iota
	KindNotFound
	KindUpstream
	KindStorage
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Config(msg string) error { return &Error{Kind: KindConfig, Msg: msg} }

func NotFound(msg string) error { return &Error{Kind: KindNotFound, Msg: msg} }

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Upstream(msg string, err error) error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

func Storage(msg string, err error) error {
	return &Error{Kind: KindStorage, Msg: msg, Err: err}
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

// HTTPStatus maps a classified error to a response status. Anything
// unclassified is a generic server error.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
