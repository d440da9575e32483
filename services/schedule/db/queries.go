package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type ScheduleVersion struct {
	ID        int64
	GroupCode string
	WeekStart string
	Hash      string
	Payload   string
	CreatedAt int64
}

const createScheduleVersion = `
INSERT INTO schedule_version (group_code, week_start, hash, payload, created_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, group_code, week_start, hash, payload, created_at
`

type CreateScheduleVersionParams struct {
	GroupCode string
	WeekStart string
	Hash      string
	Payload   string
	CreatedAt int64
}

func (q *Queries) CreateScheduleVersion(ctx context.Context, arg CreateScheduleVersionParams) (ScheduleVersion, error) {
	row := q.db.QueryRowContext(ctx, createScheduleVersion,
		arg.GroupCode,
		arg.WeekStart,
		arg.Hash,
		arg.Payload,
		arg.CreatedAt,
	)
	var v ScheduleVersion
	err := row.Scan(&v.ID, &v.GroupCode, &v.WeekStart, &v.Hash, &v.Payload, &v.CreatedAt)
	return v, err
}

const getLatestScheduleVersion = `
SELECT id, group_code, week_start, hash, payload, created_at
FROM schedule_version
WHERE group_code = ? AND week_start = ?
ORDER BY created_at DESC, id DESC
LIMIT 1
`

type GetLatestScheduleVersionParams struct {
	GroupCode string
	WeekStart string
}

func (q *Queries) GetLatestScheduleVersion(ctx context.Context, arg GetLatestScheduleVersionParams) (ScheduleVersion, error) {
	row := q.db.QueryRowContext(ctx, getLatestScheduleVersion, arg.GroupCode, arg.WeekStart)
	var v ScheduleVersion
	err := row.Scan(&v.ID, &v.GroupCode, &v.WeekStart, &v.Hash, &v.Payload, &v.CreatedAt)
	return v, err
}

const getScheduleVersion = `
SELECT id, group_code, week_start, hash, payload, created_at
FROM schedule_version
WHERE id = ?
`

func (q *Queries) GetScheduleVersion(ctx context.Context, id int64) (ScheduleVersion, error) {
	row := q.db.QueryRowContext(ctx, getScheduleVersion, id)
	var v ScheduleVersion
	err := row.Scan(&v.ID, &v.GroupCode, &v.WeekStart, &v.Hash, &v.Payload, &v.CreatedAt)
	return v, err
}

const listScheduleVersions = `
SELECT id, group_code, week_start, hash, payload, created_at
FROM schedule_version
WHERE group_code = ?
ORDER BY created_at DESC, id DESC
LIMIT ?
`

type ListScheduleVersionsParams struct {
	GroupCode string
	Limit     int64
}

func (q *Queries) ListScheduleVersions(ctx context.Context, arg ListScheduleVersionsParams) ([]ScheduleVersion, error) {
	rows, err := q.db.QueryContext(ctx, listScheduleVersions, arg.GroupCode, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ScheduleVersion
	for rows.Next() {
		var v ScheduleVersion
		err := rows.Scan(&v.ID, &v.GroupCode, &v.WeekStart, &v.Hash, &v.Payload, &v.CreatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

const getUserDailyCount = `
SELECT count FROM user_daily_usage
WHERE chat_id = ? AND user_id = ? AND date_ymd = ?
`

type GetUserDailyCountParams struct {
	ChatID  int64
	UserID  int64
	DateYmd string
}

func (q *Queries) GetUserDailyCount(ctx context.Context, arg GetUserDailyCountParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, getUserDailyCount, arg.ChatID, arg.UserID, arg.DateYmd)
	var count int64
	err := row.Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return count, err
}

const incrementUserDailyCount = `
INSERT INTO user_daily_usage (chat_id, user_id, date_ymd, count, updated_at)
VALUES (?, ?, ?, 1, ?)
ON CONFLICT (chat_id, user_id, date_ymd)
DO UPDATE SET count = count + 1, updated_at = excluded.updated_at
RETURNING count
`

type IncrementUserDailyCountParams struct {
	ChatID    int64
	UserID    int64
	DateYmd   string
	UpdatedAt int64
}

func (q *Queries) IncrementUserDailyCount(ctx context.Context, arg IncrementUserDailyCountParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, incrementUserDailyCount, arg.ChatID, arg.UserID, arg.DateYmd, arg.UpdatedAt)
	var count int64
	err := row.Scan(&count)
	return count, err
}
