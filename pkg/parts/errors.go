package parts

import "errors"

var (
	ErrUnhandledSpanKind = errors.New("parts: unhandled span kind")
	ErrUnclosedMarkup    = errors.New("parts: markup is never closed")
	ErrInvalidRange      = errors.New("parts: invalid range")
)
