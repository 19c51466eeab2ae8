package httpx

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/adeilh/httpstatus/status"
)

// HTTPErrorHandler aliases echo.HTTPErrorHandler.
type HTTPErrorHandler = echo.HTTPErrorHandler

// Validator runs before route handlers; return an error to stop the pipeline.
type Validator func(Context) error

type ServerOptions struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	NotFound     status.Status
	Middlewares  []MiddlewareFunc
	Validators   []Validator
	ErrorHandler HTTPErrorHandler
	CORS         *middleware.CORSConfig
	Logger       echo.Logger
}

type ServerOption func(*ServerOptions)

func defaultServerOptions() ServerOptions {
	return ServerOptions{
		Address:      ":8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		Middlewares:  []MiddlewareFunc{RecoverMiddleware(), LoggerMiddleware()},
		ErrorHandler: defaultHTTPErrorHandler,
		Logger:       defaultLogger(),
	}
}

func defaultLogger() *log.Logger {
	l := log.New("httpx")
	l.SetLevel(log.INFO)
	l.SetHeader(`{"time":"${time_rfc3339}","level":"${level}","prefix":"${prefix}"}`)
	return l
}

// WithAddress sets the listen address used by Start.
func WithAddress(addr string) ServerOption {
	return func(o *ServerOptions) {
		if addr != "" {
			o.Address = addr
		}
	}
}

// WithTimeouts overrides the read and write timeouts; zero keeps the default.
func WithTimeouts(read, write time.Duration) ServerOption {
	return func(o *ServerOptions) {
		if read > 0 {
			o.ReadTimeout = read
		}
		if write > 0 {
			o.WriteTimeout = write
		}
	}
}

// WithNotFound answers requests that match no route with s instead of 404.
func WithNotFound(s status.Status) ServerOption {
	return func(o *ServerOptions) { o.NotFound = s }
}

// WithMiddlewares replaces the default middleware stack.
func WithMiddlewares(mw ...MiddlewareFunc) ServerOption {
	return func(o *ServerOptions) {
		if len(mw) > 0 {
			o.Middlewares = append([]MiddlewareFunc(nil), mw...)
		}
	}
}

// AppendMiddlewares runs mw after the current stack.
func AppendMiddlewares(mw ...MiddlewareFunc) ServerOption {
	return func(o *ServerOptions) { o.Middlewares = append(o.Middlewares, mw...) }
}

// WithValidators installs request-level validators executed before route handlers.
func WithValidators(v ...Validator) ServerOption {
	return func(o *ServerOptions) {
		if len(v) > 0 {
			o.Validators = append([]Validator(nil), v...)
		}
	}
}

// WithErrorHandler replaces the envelope-writing error handler.
func WithErrorHandler(h HTTPErrorHandler) ServerOption {
	return func(o *ServerOptions) {
		if h != nil {
			o.ErrorHandler = h
		}
	}
}

// WithCORS enables CORS middleware using the provided configuration; if cfg is nil, the default config is used.
func WithCORS(cfg *middleware.CORSConfig) ServerOption {
	return func(o *ServerOptions) {
		if cfg == nil {
			def := middleware.DefaultCORSConfig
			cfg = &def
		}
		o.CORS = cfg
	}
}

// WithLogger replaces the gommon logger used for server errors.
func WithLogger(l echo.Logger) ServerOption {
	return func(o *ServerOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Server owns an App and the http.Server that serves it.
type Server struct {
	app      *App
	address  string
	read     time.Duration
	write    time.Duration
	shutdown time.Duration
	listener net.Listener
	srv      *http.Server
}

type RouteRegistrar func(*App)

type StartOption func(*Server)

// WithShutdownTimeout bounds how long Start waits for in-flight requests
// once its context is done.
func WithShutdownTimeout(d time.Duration) StartOption {
	return func(s *Server) {
		if d > 0 {
			s.shutdown = d
		}
	}
}

// WithListener serves on ln instead of listening on the configured address.
func WithListener(ln net.Listener) StartOption {
	return func(s *Server) { s.listener = ln }
}

func NewServer(opts ...ServerOption) *Server {
	cfg := defaultServerOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	app := New()
	e := app.e
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = cfg.ErrorHandler
	if cfg.Logger != nil {
		e.Logger = cfg.Logger
	}
	app.Use(cfg.Middlewares...)
	if cfg.CORS != nil {
		app.Use(CORSMiddleware(cfg.CORS))
	}
	if len(cfg.Validators) > 0 {
		app.Use(validatorMiddleware(cfg.Validators...))
	}
	if cfg.NotFound != 0 {
		nf := cfg.NotFound
		e.RouteNotFound("/*", func(Context) error { return Error(nf) })
	}

	return &Server{
		app:      app,
		address:  cfg.Address,
		read:     cfg.ReadTimeout,
		write:    cfg.WriteTimeout,
		shutdown: 5 * time.Second,
	}
}

func (s *Server) RegisterRoutes(reg RouteRegistrar) {
	if reg != nil {
		reg(s.app)
	}
}

func (s *Server) Handler() http.Handler { return s.app.e }

// Start serves until ctx is done, then shuts down gracefully and returns
// ctx.Err(). A listen or serve failure is returned as is.
func (s *Server) Start(ctx context.Context, opts ...StartOption) error {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	ln := s.listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", s.address); err != nil {
			return fmt.Errorf("httpx: listen %s: %w", s.address, err)
		}
	}
	s.srv = &http.Server{
		Handler:      s.app.e,
		ReadTimeout:  s.read,
		WriteTimeout: s.write,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// defaultHTTPErrorHandler renders every error as an Envelope. Server errors
// are logged with the underlying cause.
func defaultHTTPErrorHandler(err error, c echo.Context) {
	st, msg := errorStatus(err)
	if st.Code() >= 500 {
		c.Logger().Errorf("%s %s: %s: %v", c.Request().Method, c.Request().URL.Path, st, err)
	}
	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(st.Code())
		return
	}
	_ = c.JSON(st.Code(), NewEnvelope(st, msg, nil))
}

func validatorMiddleware(v ...Validator) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			for _, check := range v {
				if check == nil {
					continue
				}
				if err := check(c); err != nil {
					return err
				}
			}
			return next(c)
		}
	}
}
