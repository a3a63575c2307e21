package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/nim-client/internal/logger"
	"github.com/MKhiriev/nim-client/internal/service"
	"github.com/MKhiriev/nim-client/internal/validators"
	"github.com/MKhiriev/nim-client/models"
)

type App struct {
	services *service.ClientServices
	commands []models.Command

	logger *logger.Logger
}

// NewApp parses and validates args. Nothing is sent to the server when args
// are invalid.
func NewApp(services *service.ClientServices, validator validators.Validator, args []string, logger *logger.Logger) (*App, error) {
	commands := ParseCommands(args)
	if err := validator.Validate(context.Background(), commands); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCommandLine, err)
	}

	return &App{services: services, commands: commands, logger: logger}, nil
}

// Run executes the commands in order. A failed command does not stop the
// ones after it; all failures are returned together.
func (a *App) Run(ctx context.Context) error {
	var errs []error

	for _, cmd := range a.commands {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		a.logger.Debug().Str("command", cmd.Name).Msg("running command")
		if err := a.run(ctx, cmd); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", cmd.Name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrCommandsFailed, errors.Join(errs...))
	}
	return nil
}

func (a *App) run(ctx context.Context, cmd models.Command) error {
	auth := a.services.AuthService

	var err error
	switch cmd.Name {
	case models.CommandLogin:
		_, err = auth.Login(ctx, cmd.Credentials())
	case models.CommandLogout:
		_, err = auth.Logout(ctx)
	case models.CommandIdentity:
		_, err = auth.Identity(ctx)
	default:
		err = validators.ErrUnknownCommand
	}
	return err
}
