package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureSetsLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	require.NoError(t, Configure("debug", ""))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	assert.ErrorContains(t, Configure("chatty", ""), `invalid log level "chatty"`)
}

func TestConfigureWritesLogFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetLevel(log.InfoLevel)

	file := filepath.Join(t.TempDir(), "logs", "linkup.log")
	require.NoError(t, Configure("info", file))

	log.Info("hello from the test")

	contents, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "hello from the test")
}
