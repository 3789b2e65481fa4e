package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Configure sets the global logrus level and formatter. Logs go to stderr so
// stdout stays free for command output and the MCP stdio transport.
func Configure(level, format string) error {
	return ConfigureOutput(os.Stderr, level, format)
}

// ConfigureOutput is Configure with an explicit destination
func ConfigureOutput(w io.Writer, level, format string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	log.SetOutput(w)
	log.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format: %s", format)
	}
	return nil
}

func parseLevel(raw string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return log.InfoLevel, nil
	case "off", "none", "disabled":
		return log.PanicLevel, nil
	}
	lvl, err := log.ParseLevel(raw)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("unknown log level: %s", raw)
	}
	return lvl, nil
}
