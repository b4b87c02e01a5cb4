package match

import "context"

type Repository interface {
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
}
