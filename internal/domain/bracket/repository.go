package bracket

import "context"

type Repository interface {
	GetByID(ctx context.Context, bracketID int64) (Bracket, bool, error)
}
