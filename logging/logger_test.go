package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertions)
var (
	_ Logger = (*RelayLogger)(nil)
	_ Logger = (*SlogAdapter)(nil)
	_ Logger = NoOpLogger{}
)

func newBufferedLogger(level LogLevel) (*RelayLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	cfg.Output = buf
	return NewLogger(cfg), buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestRelayLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedLogger(LogLevelInfo)

	logger.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug should be suppressed at info level")

	logger.Info("visible", "attempt", 1)
	entry := decodeLine(t, buf)
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, float64(1), entry["attempt"])
}

func TestRelayLogger_ErrorWithStack(t *testing.T) {
	logger, buf := newBufferedLogger(LogLevelError)

	logger.ErrorWithStack(fmt.Errorf("boom"), "relay blew up")

	entry := decodeLine(t, buf)
	assert.Equal(t, "boom", entry["error"])
	assert.NotEmpty(t, entry["stack_trace"])
}

func TestRelayLogger_WithConversationAttachesIDs(t *testing.T) {
	logger, buf := newBufferedLogger(LogLevelInfo)

	logger.WithConversation("conv-9", "req-1").Info("relayed")

	entry := decodeLine(t, buf)
	assert.Equal(t, "conv-9", entry["conversation_id"])
	assert.Equal(t, "req-1", entry["request_id"])
}

func TestRelayLogger_WithComponentAndContext(t *testing.T) {
	logger, buf := newBufferedLogger(LogLevelInfo)

	logger.WithComponent("api").WithContext("route", "/chat/").Info("request handled")

	entry := decodeLine(t, buf)
	assert.Equal(t, "api", entry["component"])
	assert.Equal(t, "/chat/", entry["route"])
}

func TestRelayLogger_LogLLMCall(t *testing.T) {
	logger, buf := newBufferedLogger(LogLevelInfo)

	logger.LogLLMCall("llama-3.1-8b-instant", 120*time.Millisecond, true, nil)
	entry := decodeLine(t, buf)
	assert.Equal(t, "LLM call completed", entry["msg"])
	assert.Equal(t, "llama-3.1-8b-instant", entry["model"])

	buf.Reset()
	logger.LogLLMCall("llama-3.1-8b-instant", time.Millisecond, false, fmt.Errorf("boom"))
	entry = decodeLine(t, buf)
	assert.Equal(t, "LLM call failed", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
}

func TestRelayLogger_TextFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := DefaultLoggerConfig()
	cfg.Format = "text"
	cfg.Output = buf
	logger := NewLogger(cfg)

	logger.Warn("plain text entry")
	assert.Contains(t, buf.String(), "plain text entry")
	assert.Contains(t, buf.String(), "WARN")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLevel("debug"))
	assert.Equal(t, LogLevelWarn, ParseLevel("warn"))
	assert.Equal(t, LogLevelError, ParseLevel("error"))
	assert.Equal(t, LogLevelInfo, ParseLevel("anything else"))
}
