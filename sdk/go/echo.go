package adsmedia

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ClientContextKey is the key used to store the Client in echo.Context.
const ClientContextKey = "adsmedia_client"

// EchoMiddleware returns Echo middleware that makes the client available to
// handlers through FromEcho.
func (client *Client) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ClientContextKey, client)
			return next(c)
		}
	}
}

// FromEcho retrieves the client stored by EchoMiddleware.
// Returns nil if the middleware was not applied.
func FromEcho(c echo.Context) *Client {
	if client, ok := c.Get(ClientContextKey).(*Client); ok {
		return client
	}
	return nil
}

// RegisterEchoRoutes mounts the email endpoints on an Echo group:
//
//	POST /send, POST /batch, GET /check?email=, GET /ping, GET /usage
//
// Successful calls answer 200 with the API response as-is. Any failure,
// including an empty or undecodable request body, answers 500 with
// {"error": msg}. Body size limits are left to the host (middleware.BodyLimit).
//
//	e := echo.New()
//	client.RegisterEchoRoutes(e.Group("/email"))
func (client *Client) RegisterEchoRoutes(g *echo.Group) {
	g.POST("/send", func(c echo.Context) error {
		var req SendEmailRequest
		if err := bindEchoBody(c, &req); err != nil {
			return echoFailure(c, err)
		}
		return echoReply(c)(client.Send(c.Request().Context(), req))
	})

	g.POST("/batch", func(c echo.Context) error {
		var req BatchEmailRequest
		if err := bindEchoBody(c, &req); err != nil {
			return echoFailure(c, err)
		}
		return echoReply(c)(client.SendBatch(c.Request().Context(), req))
	})

	g.GET("/check", func(c echo.Context) error {
		return echoReply(c)(client.CheckSuppression(c.Request().Context(), c.QueryParam("email")))
	})

	g.GET("/ping", func(c echo.Context) error {
		return echoReply(c)(client.Ping(c.Request().Context()))
	})

	g.GET("/usage", func(c echo.Context) error {
		return echoReply(c)(client.GetUsage(c.Request().Context()))
	})
}

// bindEchoBody decodes the JSON body. Unlike echo.DefaultBinder it fails on
// an empty body instead of leaving v zeroed.
func bindEchoBody(c echo.Context, v interface{}) error {
	if err := c.Echo().JSONSerializer.Deserialize(c, v); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return fmt.Errorf("invalid request body: %v", he.Message)
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func echoReply(c echo.Context) func(Response, error) error {
	return func(resp Response, err error) error {
		if err != nil {
			return echoFailure(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func echoFailure(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
