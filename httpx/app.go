package httpx

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Context aliases echo.Context so callers can stay within httpx imports.
type Context = echo.Context

// HandlerFunc aliases echo.HandlerFunc.
type HandlerFunc = echo.HandlerFunc

// MiddlewareFunc aliases echo.MiddlewareFunc.
type MiddlewareFunc = echo.MiddlewareFunc

// DefaultCORSConfig mirrors echo's default CORS configuration.
var DefaultCORSConfig = middleware.DefaultCORSConfig

// App is the route table of a Server.
type App struct{ e *echo.Echo }

// New creates an App over a fresh echo instance.
func New() *App { return &App{echo.New()} }

// Use appends middleware to every route of a.
func (a *App) Use(mw ...MiddlewareFunc) {
	if len(mw) > 0 {
		a.e.Use(mw...)
	}
}

// Group is NewRouter(a, prefix, mw...).
func (a *App) Group(prefix string, mw ...MiddlewareFunc) *Router { return NewRouter(a, prefix, mw...) }

// GET registers a GET route.
func (a *App) GET(path string, h HandlerFunc, mw ...MiddlewareFunc) { a.e.GET(path, h, mw...) }

// POST registers a POST route.
func (a *App) POST(path string, h HandlerFunc, mw ...MiddlewareFunc) { a.e.POST(path, h, mw...) }

// PUT registers a PUT route.
func (a *App) PUT(path string, h HandlerFunc, mw ...MiddlewareFunc) { a.e.PUT(path, h, mw...) }

// DELETE registers a DELETE route.
func (a *App) DELETE(path string, h HandlerFunc, mw ...MiddlewareFunc) { a.e.DELETE(path, h, mw...) }

// PATCH registers a PATCH route.
func (a *App) PATCH(path string, h HandlerFunc, mw ...MiddlewareFunc) { a.e.PATCH(path, h, mw...) }

// RecoverMiddleware turns handler panics into 500 responses.
func RecoverMiddleware() MiddlewareFunc { return middleware.Recover() }

// LoggerMiddleware writes one access-log line per request.
func LoggerMiddleware() MiddlewareFunc { return middleware.Logger() }

// CORSMiddleware builds a CORS middleware from the provided config; nil uses defaults.
func CORSMiddleware(cfg *middleware.CORSConfig) MiddlewareFunc {
	if cfg == nil {
		return middleware.CORS()
	}
	return middleware.CORSWithConfig(*cfg)
}
