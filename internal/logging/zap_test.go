package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_LevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	entries := logs.All()
	require.Len(t, entries, 4)

	wantLevels := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	wantMsgs := []string{"dbg", "inf", "wrn", "err"}
	for i, e := range entries {
		assert.Equal(t, wantLevels[i], e.Level)
		assert.Equal(t, wantMsgs[i], e.Message)
		assert.Len(t, e.Context, 1)
	}
	assert.Equal(t, int64(2), entries[1].ContextMap()["b"])
}

func TestZapLogger_With_AddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewZapLogger(zap.New(core)).With("module", "sync_service")

	log.Info(context.Background(), "hello", "k", "v")

	entries := logs.FilterMessage("hello").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "sync_service", fields["module"])
	assert.Equal(t, "v", fields["k"])
}

func TestNew_SelectsBackend(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(FormatZap, "", &buf)
	require.NoError(t, err)
	assert.IsType(t, &ZapLogger{}, l)
	l.Info(context.Background(), "zap-line", "x", "y")
	assert.Contains(t, buf.String(), `"msg":"zap-line"`)

	buf.Reset()
	l, err = New("", "", &buf)
	require.NoError(t, err)
	assert.IsType(t, &SlogLogger{}, l)
	l.Info(context.Background(), "slog-line")
	assert.Contains(t, buf.String(), `"msg":"slog-line"`)

	_, err = New("logrus", "", &buf)
	require.Error(t, err)
	_, err = New(FormatSlog, "loud", &buf)
	require.Error(t, err)
}

func TestNew_LevelFiltersBothBackends(t *testing.T) {
	for _, format := range []string{FormatSlog, FormatZap} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(format, "warn", &buf)
			require.NoError(t, err)

			l.Info(context.Background(), "quiet")
			l.Warn(context.Background(), "loud")
			assert.NotContains(t, buf.String(), "quiet")
			assert.Contains(t, buf.String(), "loud")
		})
	}
}

func TestZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, zapLevel(slog.LevelDebug))
	assert.Equal(t, zapcore.InfoLevel, zapLevel(slog.LevelInfo))
	assert.Equal(t, zapcore.WarnLevel, zapLevel(slog.LevelWarn))
	assert.Equal(t, zapcore.ErrorLevel, zapLevel(slog.LevelError))
}
