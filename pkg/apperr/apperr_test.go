package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("phone", "must be 10 digits"), KindValidation},
		{"not found", NotFound("crop"), KindNotFound},
		{"conflict", Conflict("feedback already submitted for order %d", 3), KindConflict},
		{"wrapped conflict", fmt.Errorf("submit: %w", Conflict("x")), KindConflict},
		{"unauthorized", Unauthorized("session expired"), KindUnauthorized},
		{"gorm not found", gorm.ErrRecordNotFound, KindNotFound},
		{"plain", errors.New("disk I/O error"), KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, IsDuplicate(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicate(errors.New("constraint failed: UNIQUE constraint failed: customers.phone (2067)")))
	assert.False(t, IsDuplicate(errors.New("no such table")))
	assert.False(t, IsDuplicate(nil))
}

func TestRespond(t *testing.T) {
	e := echo.New()
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", Validation("rating", "must be between 1 and 5"), http.StatusBadRequest, `{"error":"must be between 1 and 5","field":"rating"}`},
		{"not found", NotFound("order"), http.StatusNotFound, `{"error":"order not found"}`},
		{"conflict", Conflict("duplicate phone"), http.StatusConflict, `{"error":"duplicate phone"}`},
		{"internal hides detail", errors.New("database is locked"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			require.NoError(t, Respond(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
