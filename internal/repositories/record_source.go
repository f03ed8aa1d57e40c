package repositories

import (
	"context"

	"restaurant_dashboard/internal/models"
)

// RecordSource reads every record of one upstream table.
type RecordSource interface {
	FetchAll(ctx context.Context, table string) ([]models.RawRecord, error)
}
