package game

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/plus3/juicy/ecs"
)

// HeadlessOptions configures a run without a window.
type HeadlessOptions struct {
	Frames int
	Script Script
	DT     float64
	Trace  *TraceWriter
}

// Summary describes a finished headless run.
type Summary struct {
	Frames        int
	Final         TraceRecord
	TopSpeed      float64
	RunningFrames int
	IdleFrames    int
	DrawCalls     int
	Elapsed       time.Duration
	Update        *ecs.SchedulerStats
	Draw          *ecs.SchedulerStats
	Storage       ecs.StorageStats
}

// RunHeadless steps the world opts.Frames times, feeding it the scripted input and
// recording draw calls instead of rendering them. It stops early if ctx is cancelled.
func RunHeadless(ctx context.Context, world *World, opts HeadlessOptions) (Summary, error) {
	var (
		summary  Summary
		recorder Recorder
	)
	start := time.Now()

	for frame := 0; frame < opts.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		recorder.Reset()
		world.Step(opts.DT, opts.Script.InputAt(frame), &recorder)

		record := world.trace(frame)
		summary.Frames++
		summary.Final = record
		summary.DrawCalls += len(recorder.Calls)
		summary.TopSpeed = math.Max(summary.TopSpeed, math.Abs(record.VelX))
		if record.State == Running.String() {
			summary.RunningFrames++
		} else {
			summary.IdleFrames++
		}

		if err := opts.Trace.Write(record); err != nil {
			return summary, err
		}
	}

	summary.Elapsed = time.Since(start)
	summary.Update = world.Update.GetStats()
	summary.Draw = world.Draw.GetStats()
	summary.Storage = world.Storage.CollectStats()

	slog.Info("headless run finished",
		"frames", summary.Frames,
		"elapsed", summary.Elapsed,
		"final_x", summary.Final.PosX,
		"state", summary.Final.State,
	)
	return summary, nil
}

func (w *World) trace(frame int) TraceRecord {
	record := TraceRecord{Frame: frame}
	pos := ecs.Get[Position](w.Storage, w.Player)
	vel := ecs.Get[Velocity](w.Storage, w.Player)
	anim := ecs.Get[PlayerAnimation](w.Storage, w.Player)
	if pos == nil || vel == nil || anim == nil {
		return record
	}

	record.PosX = pos.X
	record.PosY = pos.Y
	record.VelX = vel.X
	record.State = anim.State.String()
	record.Breath = anim.BreathCycle
	record.AnimFrame = anim.Running.CurrentFrame()
	return record
}
