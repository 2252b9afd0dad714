package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adsmedia/mailbridge/internal/logger"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name        string
		incomingID  string
		expectNewID bool
	}{
		{name: "new ID generated when header not present", expectNewID: true},
		{name: "existing ID preserved when header present", incomingID: "req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := New(logger.Nop())

			var seen string
			h := mw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incomingID != "" {
				req.Header.Set(RequestIDHeader, tt.incomingID)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			assert.Equal(t, got, seen)
			if tt.expectNewID {
				assert.Len(t, got, 36)
			} else {
				assert.Equal(t, tt.incomingID, got)
			}
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, GetRequestID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	mw := New(logger.NewWithWriter(&buf, "info", "json"))

	h := mw.RequestID(mw.Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/email/ping", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "handler panicked", entry["message"])
	assert.Equal(t, "boom", entry["panic"])
	assert.Equal(t, "GET /email/ping", entry["route"])
	assert.Equal(t, "http", entry["component"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), entry["request_id"])
}

func TestRecover_ReraisesAbortHandler(t *testing.T) {
	mw := New(logger.Nop())
	h := mw.Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name             string
		handler          http.HandlerFunc
		wantLevel        string
		wantStatus       int
		wantBytes        int
		wantRemoteStatus interface{}
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"id":"1"}`))
			},
			wantLevel:  "info",
			wantStatus: http.StatusOK,
			wantBytes:  10,
		},
		{
			name: "facade failure carries remote status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				SetRemoteStatus(r.Context(), http.StatusServiceUnavailable)
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"x"}`))
			},
			wantLevel:        "warn",
			wantStatus:       http.StatusInternalServerError,
			wantBytes:        13,
			wantRemoteStatus: float64(http.StatusServiceUnavailable),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := New(logger.NewWithWriter(&buf, "info", "json"))

			req := httptest.NewRequest(http.MethodPost, "/email/send", nil)
			req.Header.Set("X-Forwarded-For", "10.0.0.1")
			mw.RequestID(mw.Logger(tt.handler)).ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "HTTP request", entry["message"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "POST", entry["method"])
			assert.Equal(t, "/email/send", entry["path"])
			assert.Equal(t, float64(tt.wantStatus), entry["status"])
			assert.Equal(t, float64(tt.wantBytes), entry["bytes"])
			assert.Equal(t, "10.0.0.1", entry["client_ip"])
			assert.NotEmpty(t, entry["request_id"])
			assert.Equal(t, tt.wantRemoteStatus, entry["remote_status"])
		})
	}
}

func TestSetRemoteStatus_OutsideLoggerIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		SetRemoteStatus(httptest.NewRequest(http.MethodGet, "/", nil).Context(), 500)
	})
}
