package models

// AnalyticsReport is the composite admin report. It is computed on demand from
// the windowed view-event set and never persisted. All six slices are non-nil
// so an empty window serializes as six empty JSON arrays.
//
// Example JSON:
//
//	{
//	  "topArticles": [
//	    {"article_id": "a1", "title": "Budget vote", "slug": "budget-vote", "view_count": 120}
//	  ],
//	  "uniqueVisitorsPerDay": [
//	    {"day": "2024-01-15", "unique_visitors": 42}
//	  ],
//	  "avgReadTimePerArticle": [
//	    {"article_id": "a1", "title": "Budget vote", "slug": "budget-vote", "avg_read_time_seconds": 95.5, "view_count": 80}
//	  ],
//	  "browsers": [{"browser": "Chrome", "views": 90}, {"browser": "Unknown", "views": 3}],
//	  "devices": [{"device_type": "mobile", "views": 70}, {"device_type": "unknown", "views": 2}],
//	  "trafficByHour": [{"hour": 9, "views": 30}, {"hour": 14, "views": 55}]
//	}
type AnalyticsReport struct {
	TopArticles           []*TopArticleRow     `json:"topArticles"`
	UniqueVisitorsPerDay  []*VisitorsPerDayRow `json:"uniqueVisitorsPerDay"`
	AvgReadTimePerArticle []*AvgReadTimeRow    `json:"avgReadTimePerArticle"`
	Browsers              []*BrowserRow        `json:"browsers"`
	Devices               []*DeviceRow         `json:"devices"`
	TrafficByHour         []*TrafficByHourRow  `json:"trafficByHour"`
}

type TopArticleRow struct {
	ArticleID string  `json:"article_id"`
	Title     *string `json:"title"`
	Slug      *string `json:"slug"`
	ViewCount int64   `json:"view_count"`
}

type VisitorsPerDayRow struct {
	Day            string `json:"day"` // UTC calendar date, YYYY-MM-DD
	UniqueVisitors int64  `json:"unique_visitors"`
}

type AvgReadTimeRow struct {
	ArticleID          string  `json:"article_id"`
	Title              *string `json:"title"`
	Slug               *string `json:"slug"`
	AvgReadTimeSeconds float64 `json:"avg_read_time_seconds"`
	ViewCount          int64   `json:"view_count"`
}

type BrowserRow struct {
	Browser string `json:"browser"`
	Views   int64  `json:"views"`
}

type DeviceRow struct {
	DeviceType string `json:"device_type"`
	Views      int64  `json:"views"`
}

type TrafficByHourRow struct {
	Hour  int   `json:"hour"` // UTC hour of day, 0-23; hours without views are omitted
	Views int64 `json:"views"`
}
