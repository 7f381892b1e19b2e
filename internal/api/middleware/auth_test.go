package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAdmin(t *testing.T) {
	auth := NewAuth("secret")
	called := false
	handler := auth.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.True(t, IsAdmin(r.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	rec = httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Admin-Token", "secret")
	rec = httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAnnotate(t *testing.T) {
	auth := NewAuth("secret")
	var admin bool
	handler := auth.Annotate(func(w http.ResponseWriter, r *http.Request) {
		admin = IsAdmin(r.Context())
	})

	// без токена запрос проходит, но без админского флага
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, admin)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Admin-Token", "secret")
	rec = httptest.NewRecorder()
	handler(rec, req)
	assert.True(t, admin)
}

func TestRequireAdminWithEmptyConfiguredToken(t *testing.T) {
	// пустой токен в конфигурации не открывает админские маршруты
	auth := NewAuth("")
	handler := auth.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Admin-Token", "")
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
