package sqlstore

type membershipTableModel struct {
	ID        int64 `db:"id,readonly"`
	BracketID int64 `db:"bracket_id"`
	TeamID    int64 `db:"team_id"`
}

type bracketTeamRow struct {
	MembershipID int64  `db:"membership_id"`
	BracketID    int64  `db:"bracket_id"`
	TeamID       int64  `db:"team_id"`
	TeamName     string `db:"team_name"`
	TeamSport    string `db:"team_sport"`
}
