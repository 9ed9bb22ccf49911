package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := NewSlogLogger(slog.New(h))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=dbg", "a=1",
		"level=INFO", "msg=inf", "b=2",
		"level=WARN", "msg=wrn", "c=3",
		"level=ERROR", "msg=err", "d=4",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	log.With("store", "session").Info(context.Background(), "login", "email", "eve.holt@reqres.in")

	out := buf.String()
	assert.Contains(t, out, "store=session")
	assert.Contains(t, out, "email=eve.holt@reqres.in")
}

func TestZerologLogger_FieldsAndWith(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	log.With("store", "directory").Warn(context.Background(), "update dropped", "id", "7")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "update dropped", line["message"])
	assert.Equal(t, "directory", line["store"])
	assert.Equal(t, "7", line["id"])
}

func TestNew_SelectsBackendAndLevel(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		contains string
		silent   bool
	}{
		{name: "text", opts: Options{Format: FormatText}, contains: "msg=hello"},
		{name: "json", opts: Options{Format: FormatJSON}, contains: `"msg":"hello"`},
		{name: "zerolog", opts: Options{Format: FormatZerolog}, contains: `"message":"hello"`},
		{name: "unknown falls back to text", opts: Options{Format: "xml"}, contains: "msg=hello"},
		{name: "level filters info", opts: Options{Format: FormatJSON, Level: "error"}, silent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.opts.Output = &buf

			New(tt.opts).Info(context.Background(), "hello")

			if tt.silent {
				assert.Empty(t, buf.String())
				return
			}
			assert.True(t, strings.Contains(buf.String(), tt.contains), buf.String())
		})
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := Nop().With("k", "v")
	log.Debug(context.TODO(), "x")
	log.Info(context.TODO(), "x")
	log.Warn(context.TODO(), "x")
	log.Error(context.TODO(), "x")
}
