// Package probe measures the resident memory and CPU time a piece of work
// costs the current process.
package probe

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"
)

const mib = 1 << 20

// Snapshot is the process state at one instant.
type Snapshot struct {
	RSS    uint64 // bytes
	User   time.Duration
	System time.Duration
	At     time.Time
}

// Sampler takes snapshots of the current process.
type Sampler interface {
	Sample(ctx context.Context) (Snapshot, error)
}

// Workload is the measured computation. Its result is reported verbatim.
type Workload func(ctx context.Context) (string, error)

// Report holds the snapshots taken around a workload and its result.
type Report struct {
	Before Snapshot
	After  Snapshot
	Result string
}

// Measure samples, calls onStart with the first snapshot (if non-nil), runs
// fn, and samples again.
func Measure(ctx context.Context, s Sampler, onStart func(Snapshot), fn Workload) (Report, error) {
	before, err := s.Sample(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("sample before: %w", err)
	}
	if onStart != nil {
		onStart(before)
	}

	result, err := fn(ctx)
	if err != nil {
		return Report{}, err
	}

	after, err := s.Sample(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("sample after: %w", err)
	}

	return Report{Before: before, After: after, Result: result}, nil
}

// MiB converts a byte count to mebibytes.
func MiB(b uint64) float64 {
	return float64(b) / mib
}

// MemoryDeltaMiB is the RSS growth during the workload; it can be negative.
func (r Report) MemoryDeltaMiB() float64 {
	return MiB(r.After.RSS) - MiB(r.Before.RSS)
}

func (r Report) UserTime() time.Duration   { return r.After.User - r.Before.User }
func (r Report) SystemTime() time.Duration { return r.After.System - r.Before.System }

// Elapsed is the wall-clock time between the two snapshots, never negative.
func (r Report) Elapsed() time.Duration {
	d := r.After.At.Sub(r.Before.At)
	if d < 0 {
		return 0
	}
	return d
}

// CPUPercent is the CPU time spent per wall-clock time, rounded.
func (r Report) CPUPercent() int {
	wall := r.Elapsed()
	if wall <= 0 {
		return 0
	}
	cpu := r.UserTime() + r.SystemTime()
	return int(math.Round(float64(cpu) / float64(wall) * 100))
}

// WriteSummary prints the memory delta and a time(1)-style summary line
// naming the program.
func (r Report) WriteSummary(w io.Writer, program string) error {
	if _, err := fmt.Fprintf(w, "Total memory used: %.2f MiB\n", r.MemoryDeltaMiB()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s %.2fs user %.2fs system %d%% CPU %.3f total\n",
		program,
		r.UserTime().Seconds(),
		r.SystemTime().Seconds(),
		r.CPUPercent(),
		r.Elapsed().Seconds())
	return err
}
