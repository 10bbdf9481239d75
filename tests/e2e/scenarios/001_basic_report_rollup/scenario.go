package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalViews    = 4800 // Total number of page views to send
	articleCount  = 24   // Distinct articles; only the top 20 appear in the report
	visitorsPerDs = 50   // Distinct visitors per day slot
)

var (
	days       = []string{"2026-03-09", "2026-03-10", "2026-03-11"}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
	}
)

// ### End - fixed configs

type trackViewRequest struct {
	ArticleID        string `json:"article_id"`
	VisitorID        string `json:"visitor_id"`
	TimeSpentSeconds *int64 `json:"time_spent_seconds"`
	StartedAt        string `json:"started_at"`
}

// main runs the e2e scenario: 001_basic_report_rollup
//
// This scenario tests the end-to-end flow of page view tracking, asynchronous
// persistence, and report aggregation. It sends 4,800 page views across three
// days, 24 articles, and four user agents to the tracking API, then requests
// the admin analytics report for the full window and for a one-day slice.
//
// What it tests:
//   - Page view tracking via POST /views endpoint (202 Accepted)
//   - User agent normalization into browser and device type labels
//   - Partitioned queue production and per-article ordered consumption
//   - Report aggregation via GET /api/admin/article-analytics
//   - Date window filtering via from/to query parameters
//
// Expected results:
//   - All views are accepted with 202
//   - The unwindowed report has exactly 20 topArticles (24 articles tracked)
//   - uniqueVisitorsPerDay has one entry per day in ascending day order
//   - browsers includes Chrome, Firefox, Safari and a bot user agent label
//   - devices includes desktop, mobile, and bot
//   - A from=to one-day window reports only that day's visitors
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the article analytics API server
	parallel := 4                      // Number of concurrent tracking requests to send
	settleWait := 3 * time.Second      // Wait for async persistence to drain before reporting

	fmt.Println("Starting e2e scenario: 001_basic_report_rollup")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_VIEWS: %d\n", totalViews)
	fmt.Printf("ARTICLE_COUNT: %d\n", articleCount)
	fmt.Println()

	// Generate all tracking payloads
	fmt.Printf("Generating %d page views...\n", totalViews)
	payloads := generateAllViews()
	fmt.Printf("Generated %d payloads\n", len(payloads))
	fmt.Println()

	// Send all views through a bounded worker pool
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var acceptedRequest int64 // 202 status code
	var invalidRequest int64  // 400 status code
	var internalRequest int64 // 500 status code

	for i, payload := range payloads {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(index int, body []byte, ua string) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			statusCode, err := sendView(baseURL, body, ua)
			if err != nil {
				mu.Lock()
				errors = append(errors, fmt.Errorf("view %d: %w", index, err))
				mu.Unlock()
				fmt.Fprintf(os.Stderr, "ERROR: View %d failed: %v\n", index, err)
				return
			}

			switch statusCode {
			case http.StatusAccepted:
				atomic.AddInt64(&acceptedRequest, 1)
			case http.StatusBadRequest:
				atomic.AddInt64(&invalidRequest, 1)
			case http.StatusInternalServerError:
				atomic.AddInt64(&internalRequest, 1)
			}
		}(i, payload.body, payload.userAgent)
	}

	wg.Wait()

	fmt.Println()
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d view sends failed\n", len(errors))
		os.Exit(1)
	}

	fmt.Println("All views sent")
	fmt.Println("=== Statistics ===")
	fmt.Printf("Accepted request: %d\n", atomic.LoadInt64(&acceptedRequest))
	fmt.Printf("Invalid request: %d\n", atomic.LoadInt64(&invalidRequest))
	fmt.Printf("Internal request: %d\n", atomic.LoadInt64(&internalRequest))
	fmt.Println()

	if accepted := atomic.LoadInt64(&acceptedRequest); accepted != totalViews {
		fmt.Fprintf(os.Stderr, "ERROR: Expected %d accepted views, got %d\n", totalViews, accepted)
		os.Exit(1)
	}

	// Persistence is asynchronous; give the consumer time to drain
	fmt.Printf("Waiting %s for async persistence...\n", settleWait)
	time.Sleep(settleWait)
	fmt.Println()

	// Fetch unwindowed report
	fmt.Println("Fetching unwindowed report...")
	report, err := fetchReport(baseURL, "", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Report fetch failed: %v\n", err)
		os.Exit(1)
	}

	failures := 0
	failures += expectEqual("topArticles length", 20, len(report.TopArticles))
	failures += expectEqual("uniqueVisitorsPerDay length", len(days), len(report.UniqueVisitorsPerDay))
	for i, row := range report.UniqueVisitorsPerDay {
		failures += expectEqual(fmt.Sprintf("uniqueVisitorsPerDay[%d].day", i), days[i], row.Day)
	}
	failures += expectAtLeast("browsers length", 3, len(report.Browsers))
	failures += expectAtLeast("devices length", 3, len(report.Devices))
	failures += expectAtLeast("trafficByHour length", 1, len(report.TrafficByHour))

	// Fetch a one-day slice
	fmt.Println("Fetching one-day windowed report...")
	dayReport, err := fetchReport(baseURL, days[1], days[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Windowed report fetch failed: %v\n", err)
		os.Exit(1)
	}
	failures += expectEqual("windowed uniqueVisitorsPerDay length", 1, len(dayReport.UniqueVisitorsPerDay))
	if len(dayReport.UniqueVisitorsPerDay) == 1 {
		failures += expectEqual("windowed day", days[1], dayReport.UniqueVisitorsPerDay[0].Day)
	}

	// Malformed window must be rejected
	fmt.Println("Fetching report with malformed from parameter...")
	status, err := fetchReportStatus(baseURL, "not-a-date", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Malformed-window request failed: %v\n", err)
		os.Exit(1)
	}
	failures += expectEqual("malformed window status", http.StatusBadRequest, status)

	fmt.Println()
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d assertions failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

type viewPayload struct {
	body      []byte
	userAgent string
}

func generateAllViews() []viewPayload {
	payloads := make([]viewPayload, 0, totalViews)

	for i := 0; i < totalViews; i++ {
		dayIndex := i % len(days)
		articleIndex := i % articleCount
		visitorIndex := i % visitorsPerDs
		uaIndex := i % len(userAgents)

		// Hours cycle over the working day, seconds stay deterministic
		hour := 8 + (i % 12)
		startedAt := fmt.Sprintf("%sT%02d:%02d:%02dZ", days[dayIndex], hour, i%60, (i*7)%60)

		timeSpent := int64(30 + (i % 240))
		req := trackViewRequest{
			ArticleID:        fmt.Sprintf("article-%03d", articleIndex),
			VisitorID:        fmt.Sprintf("visitor-%s-%03d", days[dayIndex], visitorIndex),
			TimeSpentSeconds: &timeSpent,
			StartedAt:        startedAt,
		}

		body, err := json.Marshal(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal view %d: %v\n", i, err)
			os.Exit(1)
		}

		payloads = append(payloads, viewPayload{body: body, userAgent: userAgents[uaIndex]})
	}

	return payloads
}

func sendView(baseURL string, body []byte, ua string) (int, error) {
	req, err := http.NewRequest("POST", baseURL+"/views", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ua)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return resp.StatusCode, nil
}

type reportResponse struct {
	TopArticles []struct {
		ArticleID string `json:"article_id"`
		ViewCount int64  `json:"view_count"`
	} `json:"topArticles"`
	UniqueVisitorsPerDay []struct {
		Day            string `json:"day"`
		UniqueVisitors int64  `json:"unique_visitors"`
	} `json:"uniqueVisitorsPerDay"`
	AvgReadTimePerArticle []struct {
		ArticleID string `json:"article_id"`
	} `json:"avgReadTimePerArticle"`
	Browsers []struct {
		Browser string `json:"browser"`
		Views   int64  `json:"views"`
	} `json:"browsers"`
	Devices []struct {
		DeviceType string `json:"device_type"`
		Views      int64  `json:"views"`
	} `json:"devices"`
	TrafficByHour []struct {
		Hour  int   `json:"hour"`
		Views int64 `json:"views"`
	} `json:"trafficByHour"`
}

func reportURL(baseURL, from, to string) string {
	query := url.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}
	u := baseURL + "/api/admin/article-analytics"
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

func fetchReport(baseURL, from, to string) (*reportResponse, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(reportURL(baseURL, from, to))
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var report reportResponse
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	return &report, nil
}

func fetchReportStatus(baseURL, from, to string) (int, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(reportURL(baseURL, from, to))
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func expectEqual[T comparable](name string, want, got T) int {
	if want != got {
		fmt.Fprintf(os.Stderr, "FAIL: %s: want %v, got %v\n", name, want, got)
		return 1
	}
	fmt.Printf("OK: %s = %v\n", name, got)
	return 0
}

func expectAtLeast(name string, min, got int) int {
	if got < min {
		fmt.Fprintf(os.Stderr, "FAIL: %s: want at least %d, got %d\n", name, min, got)
		return 1
	}
	fmt.Printf("OK: %s = %d\n", name, got)
	return 0
}
