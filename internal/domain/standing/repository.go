package standing

import "context"

type Repository interface {
	// ListRecords returns one record per team in store order (team id).
	ListRecords(ctx context.Context) ([]Record, error)
}
