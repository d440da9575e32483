package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"schedule-scraper/lib/timetable"
	"schedule-scraper/lib/timezone"
	"schedule-scraper/services/schedule/db"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/schedule")

type Config struct {
	GroupCode string `json:"group_code"`
	GroupUrl  string `json:"group_url"`
}

type Service struct {
	db         *sql.DB
	qry        *db.Queries
	http       *resty.Client
	normalizer timetable.Normalizer
	config     Config
}

func NewService(database *sql.DB, config Config) Service {
	return Service{
		db:         database,
		qry:        db.New(database),
		http:       newFetchClient(),
		normalizer: timetable.New(),
		config:     config,
	}
}

// ChangeReport describes one detected content change. The notifier
// owns all human-facing formatting; this is just the facts.
type ChangeReport struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

// changed is the sole gate for downstream notification: a version must
// be stored when no snapshot exists yet for the (group, week) key or
// when the stored hash differs from the fresh one.
func changed(prev db.ScheduleVersion, found bool, hash string) bool {
	return !found || prev.Hash != hash
}

// CheckAndStore fetches the group page, normalizes it, and compares
// the content hash against the latest stored version for the current
// week. On a change it persists a new version and reports it; on an
// unmodified page it stores nothing and returns nil.
func (s Service) CheckAndStore(ctx context.Context) (*ChangeReport, error) {
	ctx, span := tracer.Start(ctx, "CheckAndStore")
	defer span.End()

	span.SetAttributes(attribute.String("group", s.config.GroupCode))

	html, err := s.fetchPage(ctx, s.config.GroupUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	lessons, hash, err := s.normalizer.Snapshot(html)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	week := timezone.WeekStart(timezone.Now()).Format(time.DateOnly)

	report, err := s.detectAndPersist(ctx, week, hash, lessons)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return report, nil
}

// detectAndPersist compares the fresh hash against the latest stored
// version and persists a new one on a difference. The read and the
// insert share one transaction, so overlapping callers (the force
// update endpoint runs on request goroutines) cannot both store the
// same content: the second one re-reads the committed version and
// reports unchanged.
func (s Service) detectAndPersist(ctx context.Context, week, hash string, lessons []timetable.Lesson) (*ChangeReport, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	qtx := s.qry.WithTx(tx)

	prev, err := qtx.GetLatestScheduleVersion(ctx, db.GetLatestScheduleVersionParams{
		GroupCode: s.config.GroupCode,
		WeekStart: week,
	})
	found := true
	if errors.Is(err, sql.ErrNoRows) {
		found = false
	} else if err != nil {
		return nil, err
	}

	if !changed(prev, found, hash) {
		return nil, nil
	}

	payload, err := json.Marshal(lessons)
	if err != nil {
		return nil, err
	}
	_, err = qtx.CreateScheduleVersion(ctx, db.CreateScheduleVersionParams{
		GroupCode: s.config.GroupCode,
		WeekStart: week,
		Hash:      hash,
		Payload:   string(payload),
		CreatedAt: timezone.Now().Unix(),
	})
	if err != nil {
		return nil, err
	}
	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	return &ChangeReport{Week: week, Count: len(lessons)}, nil
}

func (s Service) GroupCode() string {
	return s.config.GroupCode
}

// LatestLessons returns the record list of the most recent stored
// version for the group, across weeks. A store with no versions yet
// yields (nil, false, nil).
func (s Service) LatestLessons(ctx context.Context) ([]timetable.Lesson, db.ScheduleVersion, bool, error) {
	versions, err := s.qry.ListScheduleVersions(ctx, db.ListScheduleVersionsParams{
		GroupCode: s.config.GroupCode,
		Limit:     1,
	})
	if err != nil {
		return nil, db.ScheduleVersion{}, false, err
	}
	if len(versions) == 0 {
		return nil, db.ScheduleVersion{}, false, nil
	}

	var lessons []timetable.Lesson
	err = json.Unmarshal([]byte(versions[0].Payload), &lessons)
	if err != nil {
		return nil, db.ScheduleVersion{}, false, err
	}
	return lessons, versions[0], true, nil
}
