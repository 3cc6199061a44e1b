package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"tutorial-api/internal/middleware"
	"tutorial-api/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware
	middlewareCfg middleware.Config
	metrics       *middleware.Metrics
	metricsPath   string

	swaggerEnabled bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Middleware
	Middleware     middleware.Config
	MetricsEnabled bool
	MetricsPath    string

	SwaggerEnabled bool
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		middlewareCfg:   cfg.Middleware,
		metricsPath:     cfg.MetricsPath,
		swaggerEnabled:  cfg.SwaggerEnabled,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if cfg.MetricsEnabled {
		srv.metrics = middleware.NewMetrics()
		if srv.metricsPath == "" {
			srv.metricsPath = "/metrics"
		}
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
