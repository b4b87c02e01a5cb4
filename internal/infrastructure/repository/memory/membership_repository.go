package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/tournament-ops/internal/domain/membership"
)

type MembershipRepository struct {
	store *Store
}

func (r *MembershipRepository) Create(_ context.Context, bracketID, teamID int64) (membership.Membership, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.brackets[bracketID]; !ok {
		return membership.Membership{}, fmt.Errorf("%w: bracket=%d team=%d", membership.ErrInvalidReference, bracketID, teamID)
	}
	if _, ok := s.teams[teamID]; !ok {
		return membership.Membership{}, fmt.Errorf("%w: bracket=%d team=%d", membership.ErrInvalidReference, bracketID, teamID)
	}
	for _, existing := range s.memberships {
		if existing.BracketID == bracketID && existing.TeamID == teamID {
			return membership.Membership{}, fmt.Errorf("%w: bracket=%d team=%d", membership.ErrDuplicate, bracketID, teamID)
		}
	}

	item := membership.Membership{
		ID:        s.nextID("bracket_teams"),
		BracketID: bracketID,
		TeamID:    teamID,
	}
	s.memberships[item.ID] = item
	return item, nil
}

func (r *MembershipRepository) ListTeamsByBracket(_ context.Context, bracketID int64) ([]membership.TeamEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]membership.TeamEntry, 0)
	for _, id := range sortedKeys(s.memberships) {
		item := s.memberships[id]
		if item.BracketID != bracketID {
			continue
		}
		t, ok := s.teams[item.TeamID]
		if !ok {
			continue
		}
		out = append(out, membership.TeamEntry{
			MembershipID: item.ID,
			BracketID:    item.BracketID,
			Team:         t,
		})
	}
	return out, nil
}

func (r *MembershipRepository) Delete(_ context.Context, membershipID int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.memberships[membershipID]; !ok {
		return false, nil
	}
	delete(s.memberships, membershipID)
	return true, nil
}
