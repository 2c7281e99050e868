package source

import "errors"

var (
	// ErrTransport is returned when a request could not be completed within the retry budget.
	ErrTransport = errors.New("transport failure")

	// ErrParse is returned when a response cannot be decoded.
	ErrParse = errors.New("malformed response")

	// ErrUnresolvable is returned when a result cannot be turned into a stream URL.
	ErrUnresolvable = errors.New("cannot resolve")
)
