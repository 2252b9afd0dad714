package adsmedia

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoApp(t *testing.T, client *Client) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Use(client.EchoMiddleware())
	client.RegisterEchoRoutes(e.Group("/email"))
	return e
}

func TestEcho_SendPassesResponseThrough(t *testing.T) {
	srv, rec := newStubAPI(t, http.StatusOK, `{"id":"123","status":"queued"}`)
	e := newEchoApp(t, newTestClient(t, srv.URL))

	req := httptest.NewRequest(http.MethodPost, "/email/send", strings.NewReader(`{"to":"x@y.com","subject":"hi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"123","status":"queued"}`, w.Body.String())
	assert.Equal(t, "Acme", rec.Body["from_name"])
}

func TestEcho_RemoteErrorBecomes500(t *testing.T) {
	srv, _ := newStubAPI(t, http.StatusBadRequest, `{"error":{"code":"bad","message":"nope"}}`)
	e := newEchoApp(t, newTestClient(t, srv.URL))

	req := httptest.NewRequest(http.MethodGet, "/email/check?email=a%2Bb%40c.com", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "nope")
}

func TestEcho_BatchWithInvalidBodyBecomes500(t *testing.T) {
	srv, rec := newStubAPI(t, http.StatusOK, `{}`)
	e := newEchoApp(t, newTestClient(t, srv.URL))

	req := httptest.NewRequest(http.MethodPost, "/email/batch", strings.NewReader(`{"recipients":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
	assert.Empty(t, rec.Method, "remote API must not be called")
}

func TestEcho_EmptyBodyBecomes500(t *testing.T) {
	srv, rec := newStubAPI(t, http.StatusOK, `{}`)
	e := newEchoApp(t, newTestClient(t, srv.URL))

	req := httptest.NewRequest(http.MethodPost, "/email/send", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid request body: EOF", body["error"])
	assert.Empty(t, rec.Method, "remote API must not be called")
}

func TestEcho_FromEcho(t *testing.T) {
	client := newTestClient(t, "http://unused")

	e := echo.New()
	e.Use(client.EchoMiddleware())
	e.GET("/who", func(c echo.Context) error {
		assert.Same(t, client, FromEcho(c))
		return c.NoContent(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, FromEcho(c))
}
