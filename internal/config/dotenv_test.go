package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDotEnv_ExplicitFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "client.env")
	require.NoError(t, os.WriteFile(p, []byte("ADAPTER_ADDRESS=http://from-dotenv:9000\nAPP_LOG_LEVEL=warn\n"), 0o600))

	t.Setenv(envFileVar, p)
	unsetEnv(t, "ADAPTER_ADDRESS")
	t.Setenv("APP_LOG_LEVEL", "debug")

	require.NoError(t, loadDotEnv())

	assert.Equal(t, "http://from-dotenv:9000", os.Getenv("ADAPTER_ADDRESS"))
	// variables already present in the environment win over the file
	assert.Equal(t, "debug", os.Getenv("APP_LOG_LEVEL"))
}

func TestLoadDotEnv_ExplicitFileMissing(t *testing.T) {
	t.Setenv(envFileVar, filepath.Join(t.TempDir(), "missing.env"))

	err := loadDotEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.env")
}

func TestLoadDotEnv_DefaultFileMissingIsIgnored(t *testing.T) {
	unsetEnv(t, envFileVar)
	t.Chdir(t.TempDir())

	assert.NoError(t, loadDotEnv())
}
