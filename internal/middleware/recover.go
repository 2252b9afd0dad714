package middleware

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
)

const internalErrorBody = `{"error":"internal server error"}`

// Recover turns a handler panic into the facade's 500 error reply.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			m.log.WithRequestID(GetRequestID(r.Context())).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Str("route", r.Method+" "+r.URL.Path).
				Msg("handler panicked")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, internalErrorBody)
		}()

		next.ServeHTTP(w, r)
	})
}
