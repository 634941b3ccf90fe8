package client

import "errors"

var (
	// ErrBadRequest is returned for HTTP 400: the request payload was
	// rejected (malformed JSON, version out of range, batch conflict).
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is returned for HTTP 404: the named batch does not exist.
	ErrNotFound = errors.New("not found")

	// ErrWrongState is returned for HTTP 409: the operation is not allowed
	// in the database's current lifecycle state.
	ErrWrongState = errors.New("wrong database state")

	// ErrNotSupported is returned for HTTP 501: the warden has no
	// collaborator configured for the operation.
	ErrNotSupported = errors.New("operation not supported")

	// ErrInternalServerError is returned for HTTP 500: the operation failed
	// on the server side.
	ErrInternalServerError = errors.New("internal server error")
)
