package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nim-client/models"
)

const (
	FieldName     = "name"
	FieldArgs     = "args"
	FieldUsername = "username"
)

type CommandValidator struct {
}

func NewCommandValidator() Validator {
	return &CommandValidator{}
}

func (v *CommandValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Command:
		return v.validateCommand(ctx, value, fields...)
	case *models.Command:
		return v.validateCommand(ctx, *value, fields...)

	case []models.Command:
		return v.validateCommands(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CommandValidator) validateCommands(ctx context.Context, commands []models.Command, fields ...string) error {
	if len(commands) == 0 {
		return ErrNoCommandsToRun
	}

	for i, cmd := range commands {
		if err := v.validateCommand(ctx, cmd, fields...); err != nil {
			return fmt.Errorf("command %d (%q): %w", i+1, cmd.Name, err)
		}
	}
	return nil
}

func (v *CommandValidator) validateCommand(_ context.Context, cmd models.Command, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldArgs, FieldUsername}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if models.Arity(cmd.Name) < 0 {
				return ErrUnknownCommand
			}
		case FieldArgs:
			if n := models.Arity(cmd.Name); n >= 0 && len(cmd.Args) != n {
				return fmt.Errorf("%w: %s takes %d, got %d", ErrWrongArgCount, cmd.Name, n, len(cmd.Args))
			}
		case FieldUsername:
			if cmd.Name == models.CommandLogin && len(cmd.Args) > 0 && cmd.Args[0] == "" {
				return ErrEmptyUsername
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
