package game_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/plus3/juicy/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHeadless(t *testing.T) {
	w := newTestWorld(t)
	script, err := game.ParseScript("right:10,none:3")
	require.NoError(t, err)

	var buf bytes.Buffer
	summary, err := game.RunHeadless(context.Background(), w, game.HeadlessOptions{
		Frames: script.Frames(),
		Script: script,
		DT:     dt,
		Trace:  game.NewTraceWriter(&buf),
	})
	require.NoError(t, err)

	assert.Equal(t, 13, summary.Frames)
	assert.Equal(t, 12, summary.Final.Frame)
	assert.Equal(t, 3.5, summary.Final.VelX)
	assert.Equal(t, 139.5, summary.Final.PosX)
	assert.Equal(t, "running", summary.Final.State)
	assert.Equal(t, 5.0, summary.TopSpeed)
	assert.Equal(t, 13, summary.RunningFrames)
	assert.Equal(t, 0, summary.IdleFrames)
	assert.Equal(t, 26, summary.DrawCalls)

	require.NotNil(t, summary.Update)
	assert.Equal(t, int64(13), summary.Update.TotalExecutions)
	assert.Equal(t, int64(26), summary.Draw.TotalExecutions)
	assert.Equal(t, 2, summary.Storage.TotalEntityCount)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 14, "header plus one row per frame")
}

func TestRunHeadlessComesToRest(t *testing.T) {
	w := newTestWorld(t)
	script, err := game.ParseScript("left:4")
	require.NoError(t, err)

	summary, err := game.RunHeadless(context.Background(), w, game.HeadlessOptions{
		Frames: 20,
		Script: script,
		DT:     dt,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.Final.VelX)
	assert.Equal(t, "idle", summary.Final.State)
	assert.Equal(t, 0, summary.Final.AnimFrame)
	assert.Equal(t, 92.0, summary.Final.PosX, "4 frames accelerating left, then 3 frames braking")
}

func TestRunHeadlessCancelled(t *testing.T) {
	w := newTestWorld(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := game.RunHeadless(ctx, w, game.HeadlessOptions{Frames: 100, DT: dt})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.Frames)
}
