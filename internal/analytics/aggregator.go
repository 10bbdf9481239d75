package analytics

import (
	"sort"

	"article-analytics/internal/models"
)

const (
	// Label for views whose browser could not be derived. The devices
	// sentinel is lowercase while the browsers one is capitalized; the
	// difference is part of the wire contract and kept on purpose.
	unknownBrowserLabel = "Unknown"
	unknownDeviceLabel  = "unknown"

	dayKeyLayout = "2006-01-02"
)

// Each aggregation below is one pass over the same windowed event set with a
// map keyed by the grouping key, then a deterministic sort. They are
// independent: no aggregation reads another's output.

// topArticlesByViews counts views per article and returns the limit highest,
// ordered by view count descending, article id ascending on ties.
func topArticlesByViews(viewEvents []*models.ViewEvent, limit int) []*models.TopArticleRow {
	countsByArticle := make(map[string]int64)
	for _, event := range viewEvents {
		countsByArticle[event.ArticleID]++
	}

	rows := make([]*models.TopArticleRow, 0, len(countsByArticle))
	for articleID, count := range countsByArticle {
		rows = append(rows, &models.TopArticleRow{ArticleID: articleID, ViewCount: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ViewCount != rows[j].ViewCount {
			return rows[i].ViewCount > rows[j].ViewCount
		}
		return rows[i].ArticleID < rows[j].ArticleID
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// uniqueVisitorsPerDay counts distinct visitor ids per UTC calendar day,
// ordered by day ascending.
func uniqueVisitorsPerDay(viewEvents []*models.ViewEvent) []*models.VisitorsPerDayRow {
	visitorsByDay := make(map[string]map[string]struct{})
	for _, event := range viewEvents {
		day := event.StartedAt.UTC().Format(dayKeyLayout)
		visitors, exists := visitorsByDay[day]
		if !exists {
			visitors = make(map[string]struct{})
			visitorsByDay[day] = visitors
		}
		visitors[event.VisitorID] = struct{}{}
	}

	rows := make([]*models.VisitorsPerDayRow, 0, len(visitorsByDay))
	for day, visitors := range visitorsByDay {
		rows = append(rows, &models.VisitorsPerDayRow{Day: day, UniqueVisitors: int64(len(visitors))})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Day < rows[j].Day })
	return rows
}

// avgReadTimePerArticle averages time_spent_seconds per article over the
// events that carry a value. Articles with no timed views never appear, so
// the per-article count is always >= 1 and the mean is well defined.
func avgReadTimePerArticle(viewEvents []*models.ViewEvent) []*models.AvgReadTimeRow {
	type readTimeAccum struct {
		total int64
		count int64
	}
	accumByArticle := make(map[string]*readTimeAccum)

	for _, event := range viewEvents {
		if event.TimeSpentSeconds == nil {
			continue
		}
		accum, exists := accumByArticle[event.ArticleID]
		if !exists {
			accum = &readTimeAccum{}
			accumByArticle[event.ArticleID] = accum
		}
		accum.total += *event.TimeSpentSeconds
		accum.count++
	}

	rows := make([]*models.AvgReadTimeRow, 0, len(accumByArticle))
	for articleID, accum := range accumByArticle {
		rows = append(rows, &models.AvgReadTimeRow{
			ArticleID:          articleID,
			AvgReadTimeSeconds: float64(accum.total) / float64(accum.count),
			ViewCount:          accum.count,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ArticleID < rows[j].ArticleID })
	return rows
}

// viewsByBrowser counts views per browser label, ordered by views descending,
// label ascending on ties. Events without a browser fall under "Unknown".
func viewsByBrowser(viewEvents []*models.ViewEvent) []*models.BrowserRow {
	countsByBrowser := make(map[string]int64)
	for _, event := range viewEvents {
		browser := event.Browser
		if browser == "" {
			browser = unknownBrowserLabel
		}
		countsByBrowser[browser]++
	}

	rows := make([]*models.BrowserRow, 0, len(countsByBrowser))
	for browser, count := range countsByBrowser {
		rows = append(rows, &models.BrowserRow{Browser: browser, Views: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Views != rows[j].Views {
			return rows[i].Views > rows[j].Views
		}
		return rows[i].Browser < rows[j].Browser
	})
	return rows
}

// viewsByDevice counts views per device type, ordered by views descending,
// label ascending on ties. Events without a device type fall under "unknown".
func viewsByDevice(viewEvents []*models.ViewEvent) []*models.DeviceRow {
	countsByDevice := make(map[string]int64)
	for _, event := range viewEvents {
		deviceType := event.DeviceType
		if deviceType == "" {
			deviceType = unknownDeviceLabel
		}
		countsByDevice[deviceType]++
	}

	rows := make([]*models.DeviceRow, 0, len(countsByDevice))
	for deviceType, count := range countsByDevice {
		rows = append(rows, &models.DeviceRow{DeviceType: deviceType, Views: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Views != rows[j].Views {
			return rows[i].Views > rows[j].Views
		}
		return rows[i].DeviceType < rows[j].DeviceType
	})
	return rows
}

// trafficByHour counts views per UTC hour of day, ordered by hour ascending.
// Hours without views are omitted, not zero-filled.
func trafficByHour(viewEvents []*models.ViewEvent) []*models.TrafficByHourRow {
	countsByHour := make(map[int]int64)
	for _, event := range viewEvents {
		countsByHour[event.StartedAt.UTC().Hour()]++
	}

	rows := make([]*models.TrafficByHourRow, 0, len(countsByHour))
	for hour, count := range countsByHour {
		rows = append(rows, &models.TrafficByHourRow{Hour: hour, Views: count})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Hour < rows[j].Hour })
	return rows
}
