package client

import "errors"

var (
	ErrInvalidCommandLine = errors.New("invalid command line")
	ErrCommandsFailed     = errors.New("one or more commands failed")
)
