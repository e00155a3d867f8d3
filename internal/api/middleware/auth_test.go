package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuth(t *testing.T) {
	handler := AdminAuth("admin-token", nopLogger{})(okHandler())

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "valid token passes",
			authHeader: "Bearer admin-token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong token is rejected",
			authHeader: "Bearer wrong-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing header is rejected",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without bearer prefix is rejected",
			authHeader: "admin-token",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCronAuth(t *testing.T) {
	handler := CronAuth("cron-secret", nopLogger{})(okHandler())

	tests := []struct {
		name       string
		target     string
		authHeader string
		wantStatus int
	}{
		{
			name:       "bearer secret passes",
			target:     "/api/v1/cron/generate-slots",
			authHeader: "Bearer cron-secret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "query secret passes",
			target:     "/api/v1/cron/generate-slots?secret=cron-secret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong bearer secret is rejected",
			target:     "/api/v1/cron/generate-slots",
			authHeader: "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong query secret is rejected",
			target:     "/api/v1/cron/generate-slots?secret=nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no credentials is rejected",
			target:     "/api/v1/cron/generate-slots",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer takes precedence over query",
			target:     "/api/v1/cron/generate-slots?secret=cron-secret",
			authHeader: "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCronAuth_EmptySecretFailsClosed(t *testing.T) {
	handler := CronAuth("", nopLogger{})(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cron/generate-slots?secret=", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
