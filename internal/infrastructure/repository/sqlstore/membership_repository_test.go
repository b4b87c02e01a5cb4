package sqlstore

import (
	"context"
	"testing"

	"github.com/riskibarqy/tournament-ops/internal/domain/membership"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipRepository_CreateIsUniquePerBracketTeam(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewMembershipRepository(conn)

	eventID := seedEvent(t, conn, "Spring Cup")
	bracketID := seedBracket(t, conn, eventID, "Open", "basketball")
	teamID := seedTeam(t, conn, "Falcons", "basketball")

	created, err := repo.Create(ctx, bracketID, teamID)
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, bracketID, created.BracketID)
	assert.Equal(t, teamID, created.TeamID)

	_, err = repo.Create(ctx, bracketID, teamID)
	require.ErrorIs(t, err, membership.ErrDuplicate)
	assert.Equal(t, 1, countRows(t, conn, "bracket_teams"))
}

func TestMembershipRepository_CreateRejectsUnknownReferences(t *testing.T) {
	conn := newTestDB(t)
	repo := NewMembershipRepository(conn)

	teamID := seedTeam(t, conn, "Falcons", "basketball")

	_, err := repo.Create(context.Background(), 999, teamID)
	require.ErrorIs(t, err, membership.ErrInvalidReference)
}

func TestMembershipRepository_ListAndDelete(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewMembershipRepository(conn)

	eventID := seedEvent(t, conn, "Spring Cup")
	bracketID := seedBracket(t, conn, eventID, "Open", "volleyball")
	otherBracketID := seedBracket(t, conn, eventID, "Juniors", "volleyball")
	spikers := seedTeam(t, conn, "Spikers", "volleyball")
	diggers := seedTeam(t, conn, "Diggers", "volleyball")

	first, err := repo.Create(ctx, bracketID, diggers)
	require.NoError(t, err)
	_, err = repo.Create(ctx, bracketID, spikers)
	require.NoError(t, err)
	_, err = repo.Create(ctx, otherBracketID, spikers)
	require.NoError(t, err)

	entries, err := repo.ListTeamsByBracket(ctx, bracketID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Diggers", entries[0].Team.Name)
	assert.Equal(t, "Spikers", entries[1].Team.Name)
	assert.Equal(t, first.ID, entries[0].MembershipID)

	deleted, err := repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	entries, err = repo.ListTeamsByBracket(ctx, bracketID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, spikers, entries[0].Team.ID)

	empty, err := repo.ListTeamsByBracket(ctx, 12345)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
