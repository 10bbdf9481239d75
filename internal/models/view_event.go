package models

import "time"

// ViewEvent is one recorded page view, the atomic unit the report is computed from.
// Browser and DeviceType are coerced to "" at the store boundary when the
// underlying column is NULL.
type ViewEvent struct {
	EventID          string    `db:"event_id"`
	ArticleID        string    `db:"article_id"`
	VisitorID        string    `db:"visitor_id"`
	StartedAt        time.Time `db:"started_at"`
	TimeSpentSeconds *int64    `db:"time_spent_seconds"`
	Browser          string    `db:"browser"`
	DeviceType       string    `db:"device_type"`
}

// ArticleMeta is the display metadata resolved for article ids referenced by
// a report. Title and Slug stay nil when the article row no longer exists.
type ArticleMeta struct {
	ID    string  `db:"id"`
	Title *string `db:"title"`
	Slug  *string `db:"slug"`
}
