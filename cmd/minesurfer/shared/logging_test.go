package shared

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := SetupLogger("warn", &buf)
	require.NoError(t, err)

	logger.Info("quiet")
	assert.Empty(t, buf.String())

	logger.Warn("loud", "cell", "3,4")
	assert.Contains(t, buf.String(), "loud")
	assert.Contains(t, buf.String(), "cell=3,4")
}

func TestSetupLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := SetupLogger("shouty", &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid log level")
}
