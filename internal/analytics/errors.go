package analytics

import (
	"fmt"

	"article-analytics/internal/shared/svcerrors"
)

// ReportService errors
const (
	codeInvalidDateRange = "ANL_1000"

	codeInternalViewEventStoreFailed = "ANL_9000"
	codeInternalArticleStoreFailed   = "ANL_9001"
)

// errInvalidDateRange returns an error for malformed from/to parameters.
func errInvalidDateRange(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDateRange, msg, cause)
}

// errInternalViewEventStoreFailed returns an error when the view event query fails.
func errInternalViewEventStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalViewEventStoreFailed, fmt.Errorf("viewEventStoreFailed: %w", cause))
}

// errInternalArticleStoreFailed returns an error when the metadata lookup fails.
func errInternalArticleStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalArticleStoreFailed, fmt.Errorf("articleStoreFailed: %w", cause))
}
