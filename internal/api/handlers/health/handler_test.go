package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticStatus map[string]bool

func (s staticStatus) Configured() map[string]bool { return s }

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(staticStatus{"manager": true, "chat": false}).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","bots":{"manager":true,"chat":false}}`, rec.Body.String())
}

func TestHandle_WithoutBots(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(nil).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}
