package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(""))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("loud"))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
}

func TestSetLevelFiltersEvents(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.LevelTraceValue)

	SetLevel("error")
	log.Warn().Msg("hidden")
	assert.Empty(t, buf.String())

	SetLevel("debug")
	log.Debug().Msg("shown")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}
