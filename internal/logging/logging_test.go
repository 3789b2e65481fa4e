package logging

import (
	"bytes"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureOutput(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.TextFormatter{})
	})

	var buf bytes.Buffer
	require.NoError(t, ConfigureOutput(&buf, "debug", "json"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	log.Debug("Released modifiers via wtype")
	assert.Contains(t, buf.String(), `"msg":"Released modifiers via wtype"`)

	buf.Reset()
	require.NoError(t, ConfigureOutput(&buf, "off", "text"))
	log.Error("hidden")
	assert.Empty(t, buf.String())
}

func TestConfigureRejectsUnknown(t *testing.T) {
	var buf bytes.Buffer
	assert.EqualError(t, ConfigureOutput(&buf, "loud", "text"), "unknown log level: loud")
	assert.EqualError(t, ConfigureOutput(&buf, "info", "xml"), "unknown log format: xml")
}
