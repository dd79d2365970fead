package pkglog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureHandler struct {
	attrs map[string]slog.Value
}

func (h *captureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	if h.attrs == nil {
		h.attrs = make(map[string]slog.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.attrs[a.Key] = a.Value
		return true
	})
	return nil
}

func (h *captureHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *captureHandler) WithGroup(_ string) slog.Handler {
	return h
}

func TestContextHandlerAddsServiceAndCID(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture, service: "pencil"}

	ctx := SetCorrelationID(context.Background(), "cid-abc")
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)

	require.NoError(t, handler.Handle(ctx, rec))

	assert.Equal(t, "pencil", capture.attrs["service"].String())
	assert.Equal(t, "cid-abc", capture.attrs["_cID"].String())
}

func TestContextHandlerSkipsInvalidCID(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture, service: "pencil"}

	ctx := context.Background()
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)

	require.NoError(t, handler.Handle(ctx, rec))

	assert.NotContains(t, capture.attrs, "_cID")
	assert.Equal(t, "pencil", capture.attrs["service"].String())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestInitLoggingWritesJSON(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	InitLogging(Options{Service: "pencil-test", Level: "debug", Output: &buf})

	slog.DebugContext(SetCorrelationID(context.Background(), "cid-1"), "hello", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), buf.String())
	assert.Equal(t, "DEBUG", rec["severity"])
	assert.Contains(t, rec, "ts")
	assert.Equal(t, "pencil-test", rec["service"])
	assert.Equal(t, "cid-1", rec["_cID"])
}

func TestContextHandlerWithAttrsKeepsService(t *testing.T) {
	capture := &captureHandler{}
	handler := (&contextHandler{Handler: capture, service: "pencil"}).WithAttrs(nil)

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	require.NoError(t, handler.Handle(context.Background(), rec))
	assert.Equal(t, "pencil", capture.attrs["service"].String())
}
