package render

import "errors"

var (
	ErrUnsupportedComponent = errors.New("render: unsupported component")
	ErrInvalidTag           = errors.New("render: invalid tag name")
	ErrInvalidAttribute     = errors.New("render: invalid attribute name")
)
