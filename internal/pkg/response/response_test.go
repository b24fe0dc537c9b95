package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbook/talentbook-backend/internal/pkg/apperror"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, http.StatusCreated, "created", gin.H{"id": "abc"})
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "created", env.Message)
	assert.NotNil(t, env.Data)
}

func TestErrorWithAppError(t *testing.T) {
	appErr := apperror.New(http.StatusConflict, "slot taken")

	w := record(func(c *gin.Context) {
		Error(c, appErr)
	})

	require.Equal(t, http.StatusConflict, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "slot taken", env.Message)
}

func TestErrorWithWrappedAppError(t *testing.T) {
	appErr := apperror.New(http.StatusNotFound, "booking not found")

	w := record(func(c *gin.Context) {
		Error(c, fmt.Errorf("load booking: %w", appErr))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestErrorHidesInternalDetails(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, errors.New("pq: connection refused"))
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.NotContains(t, env.Message, "connection refused")
}
