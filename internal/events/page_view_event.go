package events

import "time"

// PageViewEvent is the queue payload produced by the tracking service and
// consumed by the persistence worker. It carries one fully-normalized page
// view: the id and timestamp are already stamped and browser/device are
// already derived from the User-Agent, so the consumer only has to write it.
//
// Events are partitioned by ArticleID, which keeps all views of one article
// on a single consumer lane.
type PageViewEvent struct {
	EventID          string    `json:"eventId"`
	ArticleID        string    `json:"articleId"`
	VisitorID        string    `json:"visitorId"`
	StartedAt        time.Time `json:"startedAt"`
	TimeSpentSeconds *int64    `json:"timeSpentSeconds,omitempty"`
	Browser          string    `json:"browser,omitempty"`
	DeviceType       string    `json:"deviceType,omitempty"`
}
