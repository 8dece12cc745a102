package locale

import "errors"

var (
	ErrInvalidArgument  = errors.New("locale: invalid argument")
	ErrInvalidLocaleTag = errors.New("locale: invalid locale tag")
)
