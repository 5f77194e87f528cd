package game

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// TraceRecord is the player's state after one headless frame.
type TraceRecord struct {
	Frame     int     `csv:"frame"`
	PosX      float64 `csv:"pos_x"`
	PosY      float64 `csv:"pos_y"`
	VelX      float64 `csv:"vel_x"`
	State     string  `csv:"state"`
	Breath    float64 `csv:"breath"`
	AnimFrame int     `csv:"anim_frame"`
}

// TraceWriter appends trace records as CSV, writing the header once.
type TraceWriter struct {
	out           io.Writer
	headerWritten bool
}

func NewTraceWriter(out io.Writer) *TraceWriter {
	return &TraceWriter{out: out}
}

func (t *TraceWriter) Write(records ...TraceRecord) error {
	if t == nil || len(records) == 0 {
		return nil
	}

	if !t.headerWritten {
		if err := gocsv.Marshal(records, t.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		t.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, t.out); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}
