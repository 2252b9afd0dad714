package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/adsmedia/mailbridge/internal/middleware"
	adsmedia "github.com/adsmedia/mailbridge/sdk/go"
)

// SendEmail handles POST /email/send
func (h *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req adsmedia.SendEmailRequest
	if err := readJSON(w, r, &req); err != nil {
		h.fail(w, r, "send", fmt.Errorf("invalid request body: %w", err))
		return
	}

	resp, err := h.mailer.Send(r.Context(), req)
	h.reply(w, r, "send", resp, err)
}

// SendBatch handles POST /email/batch
func (h *Handler) SendBatch(w http.ResponseWriter, r *http.Request) {
	var req adsmedia.BatchEmailRequest
	if err := readJSON(w, r, &req); err != nil {
		h.fail(w, r, "send_batch", fmt.Errorf("invalid request body: %w", err))
		return
	}

	resp, err := h.mailer.SendBatch(r.Context(), req)
	h.reply(w, r, "send_batch", resp, err)
}

// CheckSuppression handles GET /email/check?email=
func (h *Handler) CheckSuppression(w http.ResponseWriter, r *http.Request) {
	resp, err := h.mailer.CheckSuppression(r.Context(), r.URL.Query().Get("email"))
	h.reply(w, r, "check_suppression", resp, err)
}

// Ping handles GET /email/ping
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	resp, err := h.mailer.Ping(r.Context())
	h.reply(w, r, "ping", resp, err)
}

// Usage handles GET /email/usage
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	resp, err := h.mailer.GetUsage(r.Context())
	h.reply(w, r, "usage", resp, err)
}

// Status handles GET /email/status?message_id=&send_id=
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := adsmedia.StatusQuery{MessageID: q.Get("message_id")}
	if raw := q.Get("send_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.fail(w, r, "status", fmt.Errorf("invalid send_id %q: %w", raw, err))
			return
		}
		query.SendID = id
	}

	resp, err := h.mailer.GetStatus(r.Context(), query)
	h.reply(w, r, "status", resp, err)
}

func (h *Handler) reply(w http.ResponseWriter, r *http.Request, op string, resp adsmedia.Response, err error) {
	if err != nil {
		h.fail(w, r, op, err)
		return
	}
	if resp == nil {
		resp = adsmedia.Response{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := 0
	if rce, ok := adsmedia.AsRemoteCallError(err); ok {
		status = rce.StatusCode
	}
	middleware.SetRemoteStatus(r.Context(), status)
	h.log.WithRequestID(middleware.GetRequestID(r.Context())).RequestFailed(op, status, err)
	writeError(w, err)
}
