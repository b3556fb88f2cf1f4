package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	mu.Lock()
	defaultLogger = nil
	quiet = false
	mu.Unlock()
}

func TestLevels(t *testing.T) {
	reset()
	var buf bytes.Buffer
	Init("warn")
	SetOutput(&buf)

	Infof("info message")
	assert.Empty(t, buf.String())

	Warnf("warn message")
	assert.Contains(t, buf.String(), "warn message")

	Errorf("error message")
	assert.Contains(t, buf.String(), "error message")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	reset()
	var buf bytes.Buffer
	Init("nonsense")
	SetOutput(&buf)

	Debugf("debug message")
	assert.Empty(t, buf.String())

	Infof("info message")
	assert.Contains(t, buf.String(), "info message")
}

func TestQuietSuppressesAllOutput(t *testing.T) {
	reset()
	var buf bytes.Buffer
	Init("debug")
	SetOutput(&buf)
	SetQuiet(true)

	Debugf("debug message")
	Infof("info message")
	Warnf("warn message")
	Errorf("error message")
	assert.Empty(t, buf.String())
	assert.True(t, Quiet())

	SetQuiet(false)
	Infof("back again")
	assert.Contains(t, buf.String(), "back again")
}
