package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommand_MissingExplicitEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.env")

	err := newCommand().Run(context.Background(), []string{"nnpredictor", "--env", path})
	require.Error(t, err)
}

func TestCommand_InvalidConfiguration(t *testing.T) {
	t.Setenv("API_PORT", "not-a-port")

	// No .env exists next to the test, which is tolerated for the default path
	err := newCommand().Run(context.Background(), []string{"nnpredictor"})
	require.Error(t, err)
}
