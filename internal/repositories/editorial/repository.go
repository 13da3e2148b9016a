package editorial

import (
	"context"

	"github.com/dmitrijs2005/toolbox/internal/models"
)

type Repository interface {
	Insert(ctx context.Context, rec models.Record) (int64, error)
	Count(ctx context.Context) (int64, error)
}
