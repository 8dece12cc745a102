package catalog

import "errors"

var (
	ErrEmptyLocale    = errors.New("catalog: locale cannot be empty")
	ErrInvalidLocale  = errors.New("catalog: invalid locale tag")
	ErrEmptyNamespace = errors.New("catalog: namespace cannot be empty")
	ErrInvalidFile    = errors.New("catalog: invalid message file")
	ErrInvalidMessage = errors.New("catalog: invalid message")
)
