package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tournament-ops/internal/domain/schedule"
	qb "github.com/riskibarqy/tournament-ops/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(ctx context.Context, item schedule.Schedule) (schedule.Schedule, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("begin tx create schedule: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insertQuery, insertArgs, err := qb.InsertModel("schedules", scheduleInsertModel{
		EventID:       item.EventID,
		BracketID:     item.BracketID,
		MatchID:       item.MatchID,
		ScheduledDate: item.Slot.Date,
		ScheduledTime: item.Slot.Time + ":00",
		Venue:         item.Venue,
		Description:   stringPtrToNull(item.Description),
	}, "RETURNING id")
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("build insert schedule query: %w", err)
	}

	var id int64
	if err := tx.QueryRowxContext(ctx, insertQuery, insertArgs...).Scan(&id); err != nil {
		switch {
		case isUniqueViolation(err):
			return schedule.Schedule{}, fmt.Errorf("%w: match=%d", schedule.ErrAlreadyScheduled, item.MatchID)
		case isForeignKeyViolation(err):
			return schedule.Schedule{}, fmt.Errorf("%w: event=%d bracket=%d match=%d", schedule.ErrInvalidReference, item.EventID, item.BracketID, item.MatchID)
		}
		return schedule.Schedule{}, fmt.Errorf("insert schedule: %w", err)
	}

	updateQuery, updateArgs, err := qb.Update("matches").
		Set("scheduled_at", item.Slot.ScheduledAt()).
		Where(qb.Eq("id", item.MatchID)).
		ToSQL()
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("build update match scheduled_at query: %w", err)
	}
	res, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("update match scheduled_at: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("rows affected update match scheduled_at: %w", err)
	}
	if affected == 0 {
		return schedule.Schedule{}, fmt.Errorf("%w: match=%d", schedule.ErrInvalidReference, item.MatchID)
	}

	if err := tx.Commit(); err != nil {
		return schedule.Schedule{}, fmt.Errorf("commit create schedule: %w", err)
	}

	item.ID = id
	return item, nil
}

func (r *ScheduleRepository) GetDetail(ctx context.Context, scheduleID int64) (schedule.Detail, bool, error) {
	query, args, err := scheduleDetailSelect().
		Where(qb.Eq("s.id", scheduleID)).
		ToSQL()
	if err != nil {
		return schedule.Detail{}, false, fmt.Errorf("build select schedule detail query: %w", err)
	}

	var row scheduleDetailRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return schedule.Detail{}, false, nil
		}
		return schedule.Detail{}, false, fmt.Errorf("select schedule detail: %w", err)
	}

	out, err := scheduleDetailFromRow(row)
	if err != nil {
		return schedule.Detail{}, false, err
	}
	return out, true, nil
}

func (r *ScheduleRepository) ListDetails(ctx context.Context) ([]schedule.Detail, error) {
	query, args, err := scheduleDetailSelect().
		OrderBy("s.scheduled_date", "s.scheduled_time", "s.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list schedule details query: %w", err)
	}

	var rows []scheduleDetailRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list schedule details: %w", err)
	}

	out := make([]schedule.Detail, 0, len(rows))
	for _, row := range rows {
		item, err := scheduleDetailFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *ScheduleRepository) Cancel(ctx context.Context, scheduleID int64) (int64, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin tx cancel schedule: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	selectQuery, selectArgs, err := qb.Select("match_id").
		From("schedules").
		Where(qb.Eq("id", scheduleID)).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build select schedule match query: %w", err)
	}
	var matchID int64
	if err := tx.GetContext(ctx, &matchID, selectQuery, selectArgs...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select schedule match: %w", err)
	}

	clearQuery, clearArgs, err := qb.Update("matches").
		SetExpr("scheduled_at", "NULL").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build clear match scheduled_at query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return 0, false, fmt.Errorf("clear match scheduled_at: %w", err)
	}

	deleteQuery, deleteArgs, err := qb.DeleteFrom("schedules").
		Where(qb.Eq("id", scheduleID)).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build delete schedule query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return 0, false, fmt.Errorf("delete schedule: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit cancel schedule: %w", err)
	}
	return matchID, true, nil
}

func scheduleDetailSelect() *qb.SelectBuilder {
	return qb.Select(
		"s.id", "s.event_id", "s.bracket_id", "s.match_id",
		"s.scheduled_date", "s.scheduled_time", "s.venue", "s.description",
		"s.created_at", "s.updated_at",
		"e.name AS event_name",
		"b.name AS bracket_name",
		"b.sport_type",
		"m.round",
		"t1.name AS team1_name",
		"t2.name AS team2_name",
	).
		From("schedules s").
		Join("matches m", qb.Expr("m.id = s.match_id")).
		Join("brackets b", qb.Expr("b.id = s.bracket_id")).
		Join("events e", qb.Expr("e.id = s.event_id")).
		LeftJoin("teams t1", qb.Expr("t1.id = m.team1_id")).
		LeftJoin("teams t2", qb.Expr("t2.id = m.team2_id"))
}

func scheduleDetailFromRow(row scheduleDetailRow) (schedule.Detail, error) {
	slot, err := schedule.ParseSlot(row.ScheduledDate.Format(schedule.DateLayout), row.ScheduledTime)
	if err != nil {
		return schedule.Detail{}, fmt.Errorf("decode schedule %d slot: %w", row.ID, err)
	}

	return schedule.Detail{
		Schedule: schedule.Schedule{
			ID:          row.ID,
			EventID:     row.EventID,
			BracketID:   row.BracketID,
			MatchID:     row.MatchID,
			Slot:        slot,
			Venue:       row.Venue,
			Description: nullStringPtr(row.Description),
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		},
		EventName:   row.EventName,
		BracketName: row.BracketName,
		SportType:   row.SportType,
		Round:       row.Round,
		Team1Name:   row.Team1Name.String,
		Team2Name:   row.Team2Name.String,
	}, nil
}
