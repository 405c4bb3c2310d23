package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_ProductionWritesJSON(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	log := New(Opts{Env: "production", Writer: &buf})
	log.WithComponent("StoryPlayer").Info("story opened", "story_id", "1")

	var line map[string]any
	req.NoError(json.Unmarshal(buf.Bytes(), &line))
	req.Equal("story opened", line["message"])
	req.Equal("StoryPlayer", line["component"])
	req.Equal("1", line["story_id"])
}

func TestLogger_ProductionDropsDebug(t *testing.T) {
	var buf bytes.Buffer

	log := New(Opts{Env: "production", Writer: &buf})
	log.Debug("tick")

	require.Zero(t, buf.Len())
}
