package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/phonicsplay/internal/errors"
)

func TestCodeOf_ThroughWrapping(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := fmt.Errorf("load list: %w", errors.NewResourceUnavailableError("cats.txt", cause))

	assert.Equal(t, errors.ErrCodeResourceUnavailable, errors.CodeOf(err))
	assert.True(t, errors.Is(err, errors.ErrCodeResourceUnavailable))
	assert.ErrorIs(t, err, cause)

	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.Contains(t, appErr.Error(), "cats.txt")
}

func TestCodeOf_PlainError(t *testing.T) {
	assert.Equal(t, "", errors.CodeOf(stderrors.New("plain")))
	assert.False(t, errors.Is(nil, errors.ErrCodeInternal))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *errors.AppError
		code   string
		status int
	}{
		{"not found", errors.NewNotFoundError("session", "abc"), errors.ErrCodeNotFound, 404},
		{"validation", errors.NewValidationError("action", "unknown"), errors.ErrCodeValidation, 400},
		{"internal", errors.NewInternalError(stderrors.New("x")), errors.ErrCodeInternal, 500},
		{"bad request", errors.NewBadRequestError("bad"), errors.ErrCodeBadRequest, 400},
		{"malformed", errors.NewMalformedEntryError("badline", nil), errors.ErrCodeMalformedEntry, 400},
		{"empty list", errors.NewEmptyListError("cats.txt"), errors.ErrCodeEmptyList, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}
