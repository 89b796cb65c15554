package log

import (
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	NewLogger().SetOutput(io.Discard)
}

func TestErrorWithTraceIDReusesRequestID(t *testing.T) {
	setupTestLogger(t)

	traceID := ErrorWithTraceID(Fields{"request_id": "req-42"}, "something broke")
	assert.Equal(t, "req-42", traceID)
}

func TestErrorWithTraceIDGeneratesTraceID(t *testing.T) {
	setupTestLogger(t)

	traceID := ErrorWithTraceID(Fields{"error": "something broke"}, "something broke")
	require.NotEmpty(t, traceID)
	require.NotEqual(t, "unknown", traceID)

	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}
