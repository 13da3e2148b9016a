package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/toolbox/internal/probe"
)

// MemProbe sums squares below the configured bound and reports the memory
// and CPU the process spent on it.
func (a *App) MemProbe(ctx context.Context) error {
	n := a.config.ProbeIterations
	if n < 0 || uint64(n) > probe.MaxSquaresBase {
		return a.fail(ctx, fmt.Errorf("probe iterations must be in [0, %d], got %d", uint64(probe.MaxSquaresBase), n))
	}

	sampler, err := newSampler()
	if err != nil {
		return a.fail(ctx, err)
	}

	onStart := func(s probe.Snapshot) {
		fmt.Fprintf(a.out, "Memory usage before: %.2f MiB\n", probe.MiB(s.RSS))
	}

	report, err := probe.Measure(ctx, sampler, onStart, probe.SumSquaresWorkload(uint64(n)))
	if err != nil {
		return a.fail(ctx, err)
	}
	a.logger.Debug(ctx, "probe finished", "elapsed", report.Elapsed().String())

	fmt.Fprintln(a.out, report.Result)
	if err := report.WriteSummary(a.out, a.tool); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}
