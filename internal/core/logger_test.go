package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetOutput(&buf)

	logger.Info("hidden")
	logger.Warn("always visible")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "always visible")

	logger.SetVerboseLevel(VerboseDebug)
	logger.Debugf("cell %d", 3)
	logger.Tracef("too verbose")
	assert.Contains(t, buf.String(), "cell 3")
	assert.NotContains(t, buf.String(), "too verbose")

	logger.SetVerboseLevel(VerboseTrace)
	logger.Dump("Regions", struct{ Images []int }{Images: []int{2}})
	assert.Contains(t, buf.String(), "Regions:")
	assert.Contains(t, buf.String(), "Images")
}
