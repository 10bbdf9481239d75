package http

import (
	"net/http"

	"article-analytics/internal/trackers"
)

type trackViewHandler struct {
	trackingService trackers.TrackingService
}

func NewTrackViewHandler(trackingService trackers.TrackingService) AppHttpHandler {
	return &trackViewHandler{
		trackingService: trackingService,
	}
}

// Handle serves POST /views requests. Persistence is asynchronous, so a 202
// acknowledges acceptance, not a committed write.
func (h *trackViewHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	_, err := h.trackingService.TrackView(r.Context(), userAgent(r), r.Body)
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusAccepted)
	return nil
}
