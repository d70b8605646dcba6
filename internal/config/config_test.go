package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/graphql", cfg.Backend.Endpoint)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Output.Colors)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bibctl.yaml")
	content := `
backend:
  endpoint: https://biblioteca.example.com/graphql
  timeout: 5s
logging:
  level: debug
output:
  colors: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://biblioteca.example.com/graphql", cfg.Backend.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Output.Colors)
}

func TestLoad_EndpointFromEnv(t *testing.T) {
	t.Setenv("BIBCTL_BACKEND_ENDPOINT", "http://env-host:8080/graphql")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "http://env-host:8080/graphql", cfg.Backend.Endpoint)
}

func TestLoad_InvalidEndpoint(t *testing.T) {
	t.Setenv("BIBCTL_BACKEND_ENDPOINT", "not a url")

	_, err := Load("")

	assert.Error(t, err)
}

func TestLoad_InvalidScheme(t *testing.T) {
	t.Setenv("BIBCTL_BACKEND_ENDPOINT", "ftp://host/graphql")

	_, err := Load("")

	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bibctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}
