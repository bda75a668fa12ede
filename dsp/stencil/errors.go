package stencil

import (
	"errors"
	"fmt"
)

// Errors returned by stencil functions.
var (
	ErrInvalidArgument       = errors.New("stencil: invalid argument")
	ErrAliasedBuffers        = errors.New("stencil: output aliases input")
	ErrTooLarge              = errors.New("stencil: image too large")
	ErrUnknownImplementation = errors.New("stencil: unknown implementation")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
