package update_reservation_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	reservations "github.com/avelinemakeup/AM-BookingService/internal/service/reservations"
)

type fakeService struct {
	err      error
	calledID int64
	status   string
}

func (f *fakeService) Transition(_ context.Context, id int64, targetStatus string) error {
	f.calledID = id
	f.status = targetStatus
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, url, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reservations/{reservationId}/status", handler.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, url, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantCode   int
	}{
		{"success", nil, http.StatusOK},
		{"not found", reservations.ErrReservationNotFound, http.StatusNotFound},
		{"invalid transition", reservations.ErrInvalidTransition, http.StatusConflict},
		{"slot taken", reservations.ErrSlotUnavailable, http.StatusConflict},
		{"store down", reservations.ErrStoreUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.serviceErr}
			rec := doRequest(t, svc, "/api/v1/reservations/7/status", `{"status":"confirmed"}`)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, int64(7), svc.calledID)
			assert.Equal(t, "confirmed", svc.status)
		})
	}
}

func TestHandleBadRequests(t *testing.T) {
	svc := &fakeService{}

	rec := doRequest(t, svc, "/api/v1/reservations/abc/status", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calledID, "service must not be called")

	rec = doRequest(t, svc, "/api/v1/reservations/7/status", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
