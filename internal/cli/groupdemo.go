package cli

import (
	"context"

	"github.com/dmitrijs2005/toolbox/internal/grouping"
)

// GroupDemo sorts the demo pairs by label, groups them and prints the groups.
func (a *App) GroupDemo(ctx context.Context) error {
	groups := grouping.SortAndGroup(grouping.DemoPairs(), grouping.PairLabel)
	a.logger.Debug(ctx, "pairs grouped", "groups", len(groups))

	if err := grouping.Render(a.out, groups); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}
