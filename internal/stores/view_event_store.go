package stores

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"article-analytics/internal/models"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=view_event_store.go -destination=./mocks/view_event_store_mock.go -package=mocks
type ViewEventStore interface {
	// InsertViewEvent appends one page view. The event log is append-only;
	// events are never updated or deleted.
	InsertViewEvent(ctx context.Context, event *models.ViewEvent) error
	// ListByWindow returns all events whose started_at falls inside the
	// inclusive window. A nil bound is unbounded on that side.
	ListByWindow(ctx context.Context, window models.DateRange) ([]*models.ViewEvent, error)
}

type viewEventStore struct {
	db           *sqlx.DB
	queryTimeout time.Duration
}

func NewViewEventStore(db *sqlx.DB, queryTimeout time.Duration) ViewEventStore {
	return &viewEventStore{db: db, queryTimeout: queryTimeout}
}

func (s *viewEventStore) InsertViewEvent(ctx context.Context, event *models.ViewEvent) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	// NULLIF keeps the columns NULL when the tracker could not derive a value
	query := `
		INSERT INTO view_events (event_id, article_id, visitor_id, started_at, time_spent_seconds, browser, device_type)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		event.EventID,
		event.ArticleID,
		event.VisitorID,
		event.StartedAt.UTC(),
		event.TimeSpentSeconds,
		event.Browser,
		event.DeviceType,
	)
	if err != nil {
		return fmt.Errorf("failed to insert view event: %w", err)
	}

	return nil
}

func (s *viewEventStore) ListByWindow(ctx context.Context, window models.DateRange) ([]*models.ViewEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	query := `
		SELECT event_id, article_id, visitor_id, started_at, time_spent_seconds,
		       COALESCE(browser, '') AS browser,
		       COALESCE(device_type, '') AS device_type
		FROM view_events
	`
	var args []interface{}

	where := ""
	if window.From != nil {
		args = append(args, window.From.UTC())
		where += " WHERE started_at >= $" + strconv.Itoa(len(args))
	}
	if window.To != nil {
		args = append(args, window.To.UTC())
		if where == "" {
			where += " WHERE"
		} else {
			where += " AND"
		}
		where += " started_at <= $" + strconv.Itoa(len(args))
	}
	query += where

	var viewEvents []*models.ViewEvent
	if err := s.db.SelectContext(ctx, &viewEvents, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list view events: %w", err)
	}

	return viewEvents, nil
}
