package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureInfo(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := InfoLogger
	InfoLogger = log.New(&buf, "INFO: ", 0)
	t.Cleanup(func() { InfoLogger = old })
	return &buf
}

func captureError(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := ErrorLogger
	ErrorLogger = log.New(&buf, "ERROR: ", 0)
	t.Cleanup(func() { ErrorLogger = old })
	return &buf
}

func TestInfo(t *testing.T) {
	buf := captureInfo(t)

	Info("catalog refreshed")

	assert.Contains(t, buf.String(), "INFO: ")
	assert.Contains(t, buf.String(), "catalog refreshed")
}

func TestInfo_Keyvals(t *testing.T) {
	buf := captureInfo(t)

	Info("booking forwarded", "sessionId", 42, "status", "CONFIRMED")

	assert.Contains(t, buf.String(), "booking forwarded sessionId=42 status=CONFIRMED")
}

func TestInfo_OddKeyval(t *testing.T) {
	buf := captureInfo(t)

	Info("shutting down", "dangling")

	assert.Contains(t, buf.String(), "shutting down dangling")
}

func TestInfof(t *testing.T) {
	buf := captureInfo(t)

	Infof("listening on :%d", 8080)

	assert.Contains(t, buf.String(), "listening on :8080")
}

func TestError(t *testing.T) {
	buf := captureError(t)

	Error("backend unreachable", "error", "connection refused")

	assert.Contains(t, buf.String(), "ERROR: ")
	assert.Contains(t, buf.String(), "backend unreachable error=connection refused")
}

func TestErrorf(t *testing.T) {
	buf := captureError(t)

	Errorf("retry %d failed", 3)

	assert.Contains(t, buf.String(), "retry 3 failed")
}

func TestInit(t *testing.T) {
	Init()

	assert.NotNil(t, InfoLogger)
	assert.NotNil(t, ErrorLogger)
	assert.NotNil(t, DebugLogger)
	assert.Equal(t, os.Stdout, InfoLogger.Writer())
	assert.Equal(t, os.Stderr, ErrorLogger.Writer())
}
