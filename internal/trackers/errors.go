package trackers

import (
	"fmt"

	"article-analytics/internal/shared/svcerrors"
)

// TrackingService errors
const (
	codeValidationFailed = "TRK_1000"

	codeInternalPageViewPublisherFailed = "TRK_9000"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalPageViewPublisherFailed returns an error when publishing to the queue fails.
func errInternalPageViewPublisherFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPageViewPublisherFailed, fmt.Errorf("pageViewPublisherFailed: %w", cause))
}
