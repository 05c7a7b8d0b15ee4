package cli

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
)
