package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID = "x-request-id"
	headerUserAgent = "user-agent"
)

const (
	queryParamFrom = "from"
	queryParamTo   = "to"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func userAgent(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerUserAgent))
}

func queryFrom(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get(queryParamFrom))
}

func queryTo(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get(queryParamTo))
}
