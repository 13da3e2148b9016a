package probe

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcessSampler reads RSS and CPU times of the running process.
type ProcessSampler struct {
	proc *process.Process
	now  func() time.Time
}

func NewProcessSampler() (*ProcessSampler, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("inspect process: %w", err)
	}
	return &ProcessSampler{proc: p, now: time.Now}, nil
}

func (s *ProcessSampler) Sample(ctx context.Context) (Snapshot, error) {
	mem, err := s.proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("memory info: %w", err)
	}

	times, err := s.proc.TimesWithContext(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cpu times: %w", err)
	}

	return Snapshot{
		RSS:    mem.RSS,
		User:   seconds(times.User),
		System: seconds(times.System),
		At:     s.now(),
	}, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
