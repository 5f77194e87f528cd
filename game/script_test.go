package game_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/plus3/juicy/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	script, err := game.ParseScript("right:10, none:3,LEFT:2")
	require.NoError(t, err)

	assert.Equal(t, game.Script{
		{Input: right, Frames: 10},
		{Input: none, Frames: 3},
		{Input: left, Frames: 2},
	}, script)
	assert.Equal(t, 15, script.Frames())

	assert.Equal(t, right, script.InputAt(0))
	assert.Equal(t, right, script.InputAt(9))
	assert.Equal(t, none, script.InputAt(10))
	assert.Equal(t, left, script.InputAt(14))
	assert.Equal(t, none, script.InputAt(15), "no keys after the script ends")
}

func TestParseScriptEmpty(t *testing.T) {
	script, err := game.ParseScript("  ")
	require.NoError(t, err)
	assert.Empty(t, script)
	assert.Equal(t, none, script.InputAt(0))
}

func TestParseScriptErrors(t *testing.T) {
	for _, bad := range []string{"right", "right:x", "right:-1", "jump:3", "right:1,,none:2"} {
		t.Run(bad, func(t *testing.T) {
			_, err := game.ParseScript(bad)
			assert.ErrorIs(t, err, game.ErrBadScript)
		})
	}
}

func TestTraceWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	trace := game.NewTraceWriter(&buf)

	require.NoError(t, trace.Write(game.TraceRecord{Frame: 0, PosX: 100.5, VelX: 0.5, State: "running"}))
	require.NoError(t, trace.Write(game.TraceRecord{Frame: 1, PosX: 101.5, VelX: 1, State: "running"}))
	require.NoError(t, trace.Write())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "frame,pos_x,pos_y,vel_x,state,breath,anim_frame", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,100.5,"))
	assert.True(t, strings.HasPrefix(lines[2], "1,101.5,"))
}

func TestNilTraceWriter(t *testing.T) {
	var trace *game.TraceWriter
	assert.NoError(t, trace.Write(game.TraceRecord{}))
}
