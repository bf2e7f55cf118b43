package mylog

import (
	"context"
	"learnbot/app/config"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestForwardToTelegram(t *testing.T) {
	ctx := context.Background()

	info := slog.NewRecord(time.Now(), slog.LevelInfo, "plain", 0)
	assert.False(t, forwardToTelegram(ctx, info))

	tagged := slog.NewRecord(time.Now(), slog.LevelInfo, "tagged", 0)
	tagged.AddAttrs(slog.Bool(TelegramKey, true))
	assert.True(t, forwardToTelegram(ctx, tagged))

	failure := slog.NewRecord(time.Now(), slog.LevelError, "failure", 0)
	assert.True(t, forwardToTelegram(ctx, failure))
}

func TestInit(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	err := Init(&config.Config{Log: config.Log{Level: "info"}})
	assert.NoError(t, err)

	ctx := context.Background()
	assert.True(t, slog.Default().Enabled(ctx, slog.LevelInfo))
	assert.False(t, slog.Default().Enabled(ctx, slog.LevelDebug))
}

func TestInit_BadLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	err := Init(&config.Config{Log: config.Log{Level: "loud"}})
	assert.Error(t, err)
}
