package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)

	t.Log("✅ ParseLevel 解析所有级别名称")
}

func TestLazyLogger_FollowsDefault(t *testing.T) {
	t.Cleanup(func() {
		SetDefault(nil)
		SetLevel(slog.LevelInfo)
	})

	logger := Logger("core/test")

	var buf bytes.Buffer
	SetOutputWithLevel(&buf, slog.LevelDebug)
	logger.Debug("policy read", "path", "/x")

	assert.Contains(t, buf.String(), "component=core/test")
	assert.Contains(t, buf.String(), "path=/x")

	buf.Reset()
	SetLevel(slog.LevelWarn)
	logger.Info("hidden")
	assert.Empty(t, buf.String())

	buf.Reset()
	SetOutput(&buf)
	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")

	t.Log("✅ LazyLogger 跟随本包 logger 与级别切换")
}

func TestSetLevel_KeepsHostDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		SetDefault(nil)
		SetLevel(slog.LevelInfo)
	})

	var hostBuf bytes.Buffer
	host := slog.New(slog.NewJSONHandler(&hostBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(host)

	SetLevel(slog.LevelError)
	assert.Same(t, host, slog.Default())
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	logger := Logger("core/test")
	logger.Info("filtered")
	assert.Empty(t, hostBuf.String())

	SetLevel(slog.LevelDebug)
	logger.Debug("through host")
	assert.Contains(t, hostBuf.String(), `"component":"core/test"`)
	assert.Same(t, host, Default())

	var own bytes.Buffer
	SetOutput(&own)
	assert.Same(t, host, slog.Default())
	logger.Info("own output")
	assert.Contains(t, own.String(), "own output")
	assert.NotContains(t, hostBuf.String(), "own output")

	t.Log("✅ 设置级别与输出不替换宿主的默认 logger")
}
