package querybuilder

import (
	"database/sql"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("sport", "volleyball"), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM teams WHERE sport = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "volleyball" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinArgsPrecedeWhereArgs(t *testing.T) {
	query, args, err := Select("t.id", "COUNT(m.id) AS played").
		From("teams t").
		LeftJoin("matches m", Expr("(m.team1_id = t.id OR m.team2_id = t.id) AND m.status = ?", "completed")).
		Join("brackets b", Expr("b.id = m.bracket_id")).
		Where(Eq("t.sport", "basketball"), NotNull("m.winner_id")).
		GroupBy("t.id").
		OrderBy("t.id ASC").
		ToSQL()
	if err != nil {
		t.Fatalf("build join query: %v", err)
	}

	wantQuery := "SELECT t.id, COUNT(m.id) AS played FROM teams t" +
		" LEFT JOIN matches m ON (m.team1_id = t.id OR m.team2_id = t.id) AND m.status = $1" +
		" JOIN brackets b ON b.id = m.bracket_id" +
		" WHERE t.sport = $2 AND m.winner_id IS NOT NULL GROUP BY t.id ORDER BY t.id ASC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "completed" || args[1] != "basketball" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinWithoutCondition(t *testing.T) {
	_, _, err := Select("id").From("teams t").Join("matches m", nil).ToSQL()
	if err == nil {
		t.Fatalf("expected error for join without ON condition")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("bracket_teams").
		Columns("bracket_id", "team_id").
		Values(int64(2), int64(9)).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO bracket_teams (bracket_id, team_id) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(2) || args[1] != int64(9) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("teams").Columns("name", "sport").Values("Falcons").ToSQL()
	if err == nil {
		t.Fatalf("expected error for row width mismatch")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("matches").
		Set("scheduled_at", "2024-05-01 14:30:00").
		SetExpr("status", "COALESCE(?, status)", "pending").
		Where(Eq("id", int64(5))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE matches SET scheduled_at = $1, status = COALESCE($2, status) WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "2024-05-01 14:30:00" || args[1] != "pending" || args[2] != int64(5) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := Update("matches").Set("scheduled_at", nil).ToSQL(); err == nil {
		t.Fatalf("expected error for update without where")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("schedules").
		Where(Eq("id", int64(3))).
		Suffix("RETURNING match_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM schedules WHERE id = $1 RETURNING match_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("schedules").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without where")
	}
}

func TestInsertModel_SkipsReadonlyColumns(t *testing.T) {
	type row struct {
		ID          int64          `db:"id,readonly"`
		MatchID     int64          `db:"match_id"`
		Venue       string         `db:"venue"`
		Description sql.NullString `db:"description"`
		Ignored     string         `db:"-"`
		internal    string
	}

	query, args, err := InsertModel("schedules", row{ID: 1, MatchID: 5, Venue: "Court A", internal: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO schedules (match_id, venue, description) VALUES ($1, $2, $3) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != int64(5) || args[1] != "Court A" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("schedules", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}

	var nilModel *struct{}
	if _, _, err := InsertModel("schedules", nilModel, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
