package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/megui/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &BaseHandler{}
	r.GET("/", func(c *gin.Context) {
		h.HandleDomainError(c, err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestBaseHandler_HandleDomainError(t *testing.T) {
	t.Run("maps NOT_FOUND to 404", func(t *testing.T) {
		w := performWithError(t, shared.NewDomainError("NOT_FOUND", "Ticket not found"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
		assert.Contains(t, w.Body.String(), "Ticket not found")
	})

	t.Run("maps GENERATION_IN_FLIGHT to 409", func(t *testing.T) {
		w := performWithError(t, shared.ErrGenerationInFlight)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_GENERATION_IN_FLIGHT")
	})

	t.Run("maps INVALID_STATE to 422", func(t *testing.T) {
		w := performWithError(t, shared.NewDomainError("INVALID_STATE", "Job has no generated PDF"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("maps INVALID_COORDINATE to 400", func(t *testing.T) {
		w := performWithError(t, shared.NewDomainError("INVALID_COORDINATE", "latitude out of range"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INVALID_COORDINATE")
	})

	t.Run("treats unknown errors as 500", func(t *testing.T) {
		w := performWithError(t, errors.New("database gone"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INTERNAL")
		assert.NotContains(t, w.Body.String(), "database gone")
	})

	t.Run("unwraps nested domain errors", func(t *testing.T) {
		wrapped := errorWrap{shared.NewDomainError("ALREADY_EXISTS", "duplicate RUC")}
		w := performWithError(t, wrapped)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

type errorWrap struct {
	inner error
}

func (e errorWrap) Error() string { return "wrapped: " + e.inner.Error() }
func (e errorWrap) Unwrap() error { return e.inner }
