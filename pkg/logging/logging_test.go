package logging

import (
	"bytes"
	"testing"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevelAndOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup("warn", &buf))
	t.Cleanup(func() { Setup("info", nil) })

	log.Info("hidden")
	log.WithField("sorter", "quicksort").Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "sorter=quicksort")
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	err := Setup("loud", nil)
	require.Error(t, err)
	assert.True(t, trace.IsBadParameter(err))
}
