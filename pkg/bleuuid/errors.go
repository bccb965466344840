package bleuuid

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError describes a malformed key, address or UUID.
type InvalidArgumentError struct {
	Argument string
	Expected string
	Got      string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: expected=%s got=%s", e.Argument, e.Expected, e.Got)
}

// Is allows errors.Is(err, ErrInvalidArgument)
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
