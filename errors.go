package msgkit

import "errors"

var (
	ErrNoDefaultLocale = errors.New("msgkit: default locale is required")
	ErrNoFormatter     = errors.New("msgkit: formatter is required")
	ErrNoKit           = errors.New("msgkit: no kit in context")
	ErrNoLocale        = errors.New("msgkit: no locale in context")
)
