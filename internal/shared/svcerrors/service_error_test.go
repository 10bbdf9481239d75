package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("ANL_1000", "invalid date range", nil),
			wantErr: NewInvalidArgumentError("ANL_1000", "invalid date range", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("ANL_9000", nil)),
			wantErr: NewInternalError("ANL_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_Error(t *testing.T) {
	svcErr := NewInvalidArgumentError("TRK_1000", "articleId is required", nil)
	assert.Equal(t, "TRK_1000: articleId is required", svcErr.Error())
}

func TestServiceError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	svcErr := NewInternalError("ANL_9000", cause)

	assert.True(t, errors.Is(svcErr, cause))
	assert.Equal(t, cause, svcErr.Unwrap())
}

func TestServiceError_IsInternalError(t *testing.T) {
	assert.True(t, NewInternalError("ANL_9000", nil).IsInternalError())
	assert.True(t, NewInternalErrorPanic(errors.New("boom")).IsInternalError())
	assert.True(t, NewInternalErrorUndefined(errors.New("boom")).IsInternalError())
	assert.False(t, NewInvalidArgumentError("ANL_1000", "bad input", nil).IsInternalError())
}

func TestNewInternalError_HidesCauseFromMessage(t *testing.T) {
	cause := errors.New("pq: password authentication failed for user admin")
	svcErr := NewInternalError("ANL_9000", cause)

	assert.Equal(t, "internal server error", svcErr.Message)
	assert.NotContains(t, svcErr.Message, "password")
}
