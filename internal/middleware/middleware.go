package middleware

import (
	"github.com/adsmedia/mailbridge/internal/logger"
)

// Middleware is the facade's request pipeline: recovery, request IDs and
// access logging. All of it logs under the "http" component.
type Middleware struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Middleware {
	return &Middleware{log: log.WithComponent("http")}
}
