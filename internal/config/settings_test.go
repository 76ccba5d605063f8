package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	s, err := LoadSettings("")

	require.NoError(t, err)
	assert.Equal(t, DefaultServerAddress, s.Server.Address)
	assert.Equal(t, 10*time.Second, s.Server.ReadTimeout)
	assert.Equal(t, int64(DefaultMaxBodyBytes), s.Server.MaxBodyBytes)
	assert.Equal(t, "info", s.Logging.Level)
	assert.Equal(t, DefaultOutputFormat, s.Output.Format)
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	path := writeFile(t, "wonpay.yaml", `
server:
  address: ":9000"
  write_timeout: 5s
logging:
  level: debug
  format: json
output:
  format: json
rates_file: rates.yaml
`)
	t.Setenv("WONPAY_SERVER_ADDRESS", "127.0.0.1:7000")

	s, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", s.Server.Address, "environment overrides the file")
	assert.Equal(t, 5*time.Second, s.Server.WriteTimeout)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "json", s.Output.Format)
	assert.Equal(t, "rates.yaml", s.RatesFile)
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	_, err := LoadSettings("/nonexistent/wonpay.yaml")
	assert.Error(t, err)
}
