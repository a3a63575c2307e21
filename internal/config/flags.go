package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client flags from args into a [StructuredConfig].
// Positional arguments after the flags are stored in Args.
//
// Flags:
//
//	-a/-address      nim server base URL, e.g. http://localhost:8080
//	-request-timeout request timeout (e.g., "30s", "1m"), 0 disables it
//	-c/-config       json file path with configs
//	-log-level       minimum log level (debug, info, warn, error)
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var address string
	var jsonConfigPath string
	var logLevel string
	var requestTimeout time.Duration

	fs.StringVar(&address, "a", "", "nim server base URL")
	fs.StringVar(&address, "address", "", "nim server base URL (alias)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}
