package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	envFileVar         = "ENV_FILE"
	defaultEnvFilePath = ".env"
)

// loadDotEnv loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables already set are left untouched.
//
// The file path comes from ENV_FILE. When ENV_FILE is unset a missing
// ./.env is not an error; an explicitly named file must exist.
func loadDotEnv() error {
	path, explicit := os.LookupEnv(envFileVar)
	if !explicit || path == "" {
		path = defaultEnvFilePath
		explicit = false
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading env file %q: %w", path, err)
}
