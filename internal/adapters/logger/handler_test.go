package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rescache/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, nil)
	log := slog.New(h.WithAttrs([]slog.Attr{slog.String("workspace", "/work")}).WithGroup("cache"))

	log.Info("settled", "resources", 6)

	assert.Equal(t, "settled cache.workspace=/work cache.resources=6\n", buf.String())
}

func TestPrettyHandler_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	level := &slog.LevelVar{}
	log := slog.New(logger.NewPrettyHandler(&buf, &slog.HandlerOptions{Level: level}))

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	level.Set(slog.LevelDebug)
	log.Debug("shown")
	log.Warn("careful")
	log.Error("broken")

	assert.Equal(t, "~ shown\n! careful\n✗ broken\n", buf.String())
}
