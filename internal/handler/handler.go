package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adsmedia/mailbridge/internal/logger"
	adsmedia "github.com/adsmedia/mailbridge/sdk/go"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_mailer.go -package=mocks

// Mailer is the subset of the ADSMedia client the handlers call.
// *adsmedia.Client satisfies it.
type Mailer interface {
	Send(ctx context.Context, req adsmedia.SendEmailRequest) (adsmedia.Response, error)
	SendBatch(ctx context.Context, req adsmedia.BatchEmailRequest) (adsmedia.Response, error)
	CheckSuppression(ctx context.Context, email string) (adsmedia.Response, error)
	Ping(ctx context.Context) (adsmedia.Response, error)
	GetUsage(ctx context.Context) (adsmedia.Response, error)
	GetStatus(ctx context.Context, query adsmedia.StatusQuery) (adsmedia.Response, error)
}

// Handler holds all HTTP handlers
type Handler struct {
	log     *logger.Logger
	mailer  Mailer
	version string
}

// New creates a new Handler instance
func New(log *logger.Logger, mailer Mailer, version string) *Handler {
	return &Handler{
		log:     log.WithComponent("email_facade"),
		mailer:  mailer,
		version: version,
	}
}

// MaxBodyBytes caps inbound request bodies.
const MaxBodyBytes = 5 << 20

// writeJSON leaves HTML unescaped so remote bodies go out as received.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(data)
}

// writeError answers 500 with the error message; the facade never
// distinguishes error kinds.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": err.Error(),
	})
}

func readJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(v)
}
