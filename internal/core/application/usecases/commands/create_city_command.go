package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateCityCommandIsNotConstructed = errors.New(
	"CreateCityCommand must be created via NewCreateCityCommand constructor",
)

// CreateCityCommand registers a city under a unique name.
type CreateCityCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

func NewCreateCityCommand(name string) (CreateCityCommand, error) {
	cmd := CreateCityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return CreateCityCommand{}, invalidArgument(err)
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCityCommand) Validate() error {
	if err := c.guard.Validate(ErrCreateCityCommandIsNotConstructed); err != nil {
		return invalidArgument(err)
	}
	return nil
}

func (c CreateCityCommand) Name() string {
	return c.name
}

func (c *CreateCityCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
