package commands

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument wraps every command construction failure, so callers can
// tell bad input apart from domain rejections with a single errors.Is check.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}
