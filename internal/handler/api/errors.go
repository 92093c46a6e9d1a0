// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/olegiv/hourlog-go/internal/store"
)

// ErrorKind classifies a user-visible failure.
type ErrorKind int

// Error kinds.
const (
	MissingField ErrorKind = iota + 1
	NotFound
	Conflict
	InvalidValue
	UnsupportedMedia
)

// Status maps the kind to its HTTP status code.
func (k ErrorKind) Status() int {
	switch k {
	case MissingField, InvalidValue:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case UnsupportedMedia:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

func (k ErrorKind) title() string {
	switch k {
	case MissingField:
		return "Missing field"
	case NotFound:
		return "Not found"
	case Conflict:
		return "Already exists"
	case InvalidValue:
		return "Invalid value"
	case UnsupportedMedia:
		return "Unsupported media type"
	default:
		return "Internal error"
	}
}

// Error is a failure reported to the client as a Mason error document.
type Error struct {
	Kind   ErrorKind
	Title  string
	Detail string
}

func (e *Error) Error() string {
	return e.Title + ": " + e.Detail
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Title: kind.title(), Detail: fmt.Sprintf(format, args...)}
}

func errMissingField(field string) *Error {
	return newError(MissingField, "Field %q is required", field)
}

func errNotFound(format string, args ...any) *Error {
	return newError(NotFound, format, args...)
}

func errInvalid(format string, args ...any) *Error {
	return newError(InvalidValue, format, args...)
}

func errUnsupportedMedia() *Error {
	return newError(UnsupportedMedia, "Requests must be JSON")
}

// storeError converts store sentinels into client errors. Anything else is
// returned unchanged and ends up as a 500.
func storeError(err error, notFound, conflict string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return newError(NotFound, "%s", notFound)
	case errors.Is(err, store.ErrConflict):
		return newError(Conflict, "%s", conflict)
	default:
		return err
	}
}
