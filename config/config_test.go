package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 0, cfg.Interpreter.MaxSteps)
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load("./testdata/zpm.yml")
	require.NoError(t, err)
	require.Equal(t, 1000, cfg.Interpreter.MaxSteps)
	require.Equal(t, "debug", cfg.Logger.Level)
	require.Equal(t, "json", cfg.Logger.Encoding)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("./testdata/missing.yml")
	require.Error(t, err)

	_, err = Load("./testdata/unknown.yml")
	require.Error(t, err)
}

func TestDecodeKeepsDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, Decode([]byte("Interpreter:\n  MaxSteps: 5\n"), &cfg))
	require.Equal(t, 5, cfg.Interpreter.MaxSteps)
	require.Equal(t, "console", cfg.Logger.Encoding)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Interpreter.MaxSteps = -1
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Logger.Encoding = "xml"
	require.Error(t, cfg.Validate())
}
