package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsFindsWrappedAppError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("team service: %w", Upstream("Failed to generate team using AI.", cause))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Failed to generate team using AI.", appErr.Message)
	assert.ErrorIs(t, err, cause)
}

func TestAsRejectsPlainErrors(t *testing.T) {
	_, ok := As(errors.New("plain"))
	assert.False(t, ok)
}

func TestConstructorsCarryStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").Code)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("x").Code)
	assert.Equal(t, http.StatusForbidden, Forbidden("x").Code)
	assert.Equal(t, http.StatusNotFound, NotFound("x").Code)
	assert.Equal(t, http.StatusConflict, Conflict("x").Code)
	assert.Equal(t, "Internal server error", Internal(errors.New("db down")).Message)
}
