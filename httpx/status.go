package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/labstack/echo/v4"

	"github.com/adeilh/httpstatus/status"
)

// Envelope is the JSON body written by Respond and the default error handler.
type Envelope struct {
	Status  int    `json:"status"`
	Alias   string `json:"alias,omitempty"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewEnvelope builds an envelope for s. An empty message falls back to the
// reason phrase.
func NewEnvelope(s status.Status, message string, data any) Envelope {
	if message == "" {
		message = reason(s)
	}
	return Envelope{Status: s.Code(), Alias: s.Alias(), Message: message, Data: data}
}

// Respond writes data wrapped in an Envelope with status s.
func Respond(c Context, s status.Status, data any) error {
	return c.JSON(s.Code(), NewEnvelope(s, "", data))
}

// Error returns an HTTP error for s. Without a message the reason phrase is used.
func Error(s status.Status, message ...any) error {
	if len(message) == 0 {
		return echo.NewHTTPError(s.Code(), reason(s))
	}
	return echo.NewHTTPError(s.Code(), message...)
}

// ErrorAlias is Error for a status named by alias or key, e.g. from config.
// An unknown alias is itself a server error.
func ErrorAlias(alias string, message ...any) error {
	s, err := status.FromAlias(alias)
	if err != nil {
		return echo.NewHTTPError(status.InternalServerError.Code(), status.InternalServerError.Text()).SetInternal(err)
	}
	return Error(s, message...)
}

// HTTPError constructs an HTTP error from a raw code.
func HTTPError(code int, message any) error { return echo.NewHTTPError(code, message) }

// StatusOf resolves the status of a client response.
func StatusOf(resp *resty.Response) (status.Status, error) {
	if resp == nil || resp.RawResponse == nil {
		return 0, errors.New("httpx: no response")
	}
	return status.FromCode(resp.StatusCode())
}

// reason is the registered reason phrase of s. Codes outside the registry
// fall back to net/http's table, then to s.String().
func reason(s status.Status) string {
	if t := s.Text(); t != "" {
		return t
	}
	if t := http.StatusText(s.Code()); t != "" {
		return t
	}
	return s.String()
}

// errorStatus maps a handler error to a status and client-facing message.
func errorStatus(err error) (status.Status, string) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return status.InternalServerError, status.InternalServerError.Text()
	}
	s := status.Status(he.Code)
	switch m := he.Message.(type) {
	case nil:
		return s, reason(s)
	case string:
		return s, m
	case error:
		return s, m.Error()
	default:
		return s, fmt.Sprint(m)
	}
}
