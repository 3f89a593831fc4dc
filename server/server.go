package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cshum/thumbor"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Middleware http middleware
type Middleware func(http.Handler) http.Handler

// Metrics represents metrics Startup and Shutdown lifecycle and Handle middleware
type Metrics interface {
	Startup(ctx context.Context) error
	Shutdown(ctx context.Context) error
	Handle(next http.Handler) http.Handler
}

// Server URL signing server.
// Clients post operations and get signed thumbor URLs back,
// the security key never leaves the server.
type Server struct {
	http.Server
	Builder         thumbor.Builder
	Address         string
	Port            int
	CertFile        string
	KeyFile         string
	PathPrefix      string
	SentryDsn       string
	StartupTimeout  time.Duration
	ShutdownTimeout time.Duration
	AccessLog       bool
	Logger          *zap.Logger
	Debug           bool
	Metrics         Metrics
}

// New create new Server for builder
func New(builder thumbor.Builder, options ...Option) *Server {
	s := &Server{}
	s.Builder = builder
	s.Port = 8000
	s.ReadTimeout = time.Second * 30
	s.ReadHeaderTimeout = time.Second * 10
	s.StartupTimeout = time.Second * 10
	s.ShutdownTimeout = time.Second * 10
	s.MaxHeaderBytes = 1 << 20
	s.Logger = zap.NewNop()
	s.Handler = s.routes()

	for _, option := range options {
		option(s)
	}
	if s.Addr == "" {
		s.Addr = s.Address + ":" + fmt.Sprint(s.Port)
	}
	if s.AccessLog {
		s.Handler = s.accessLogHandler(s.Handler)
	}
	if s.PathPrefix != "" {
		s.Handler = http.StripPrefix(s.PathPrefix, s.Handler)
	}
	if s.Metrics != nil {
		s.Handler = s.Metrics.Handle(s.Handler)
	}
	s.Handler = s.panicHandler(s.Handler)
	if errorLog, err := zap.NewStdLogAt(s.Logger, zap.WarnLevel); err == nil {
		s.ErrorLog = errorLog
	}
	return s
}

// Run server that terminates on SIGINT, SIGTERM signals
func (s *Server) Run() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	s.RunContext(ctx)
}

// RunContext run server with context, gracefully shutdown when context is done
func (s *Server) RunContext(ctx context.Context) {
	s.startup(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.listenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
		defer cancel()
		return s.Shutdown(sctx)
	})
	s.Logger.Info("listen", zap.String("addr", s.Addr))
	if err := g.Wait(); err != nil {
		s.Logger.Error("server", zap.Error(err))
	}
	s.shutdown()
}

func (s *Server) startup(ctx context.Context) {
	if s.Metrics == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.StartupTimeout)
	defer cancel()
	if err := s.Metrics.Startup(ctx); err != nil {
		s.Logger.Error("metrics startup", zap.Error(err))
	}
}

func (s *Server) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()
	if s.Metrics != nil {
		if err := s.Metrics.Shutdown(ctx); err != nil {
			s.Logger.Error("metrics shutdown", zap.Error(err))
		}
	}
	if s.SentryDsn != "" {
		sentry.Flush(2 * time.Second)
	}
	s.Logger.Info("exit")
}

func (s *Server) listenAndServe() error {
	if s.CertFile != "" && s.KeyFile != "" {
		return s.ListenAndServeTLS(s.CertFile, s.KeyFile)
	}
	return s.ListenAndServe()
}
