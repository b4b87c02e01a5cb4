package membership

import "context"

type Repository interface {
	// Create fails with ErrDuplicate when (bracketID, teamID) already exists.
	Create(ctx context.Context, bracketID, teamID int64) (Membership, error)
	ListTeamsByBracket(ctx context.Context, bracketID int64) ([]TeamEntry, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, membershipID int64) (bool, error)
}
