package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownCommand  = errors.New("unknown command")
	ErrWrongArgCount   = errors.New("wrong number of command arguments")
	ErrEmptyUsername   = errors.New("username is required")
	ErrNoCommandsToRun = errors.New("no commands to run")
)
