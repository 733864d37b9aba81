// Package server serves the portfolio over HTTP with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Itsme-Debapriya/portfolio/internal/assets"
	"github.com/Itsme-Debapriya/portfolio/internal/config"
	"github.com/Itsme-Debapriya/portfolio/internal/contact"
	"github.com/Itsme-Debapriya/portfolio/internal/content"
	"github.com/Itsme-Debapriya/portfolio/internal/store"
)

// Analytics is the part of the store the server reads from.
type Analytics interface {
	Stats(ctx context.Context) (*store.Stats, error)
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
	HashIP(ip string) string
}

// Visits queues page views.
type Visits interface {
	Track(ip, userAgent, path string) bool
}

// Deps are the collaborators a Server needs. Analytics and Visits are nil when
// tracking is off.
type Deps struct {
	Config    *config.Config
	Site      content.Site
	Contact   *contact.Service
	Analytics Analytics
	Visits    Visits
	Log       *zap.Logger
	Now       func() time.Time
}

// Server is the HTTP front end.
type Server struct {
	cfg        *config.Config
	site       content.Site
	contact    *contact.Service
	analytics  Analytics
	visits     Visits
	log        *zap.Logger
	now        func() time.Time
	adminToken string
	engine     *gin.Engine
	handler    http.Handler
}

// New builds the gin engine and registers every route.
func New(d Deps) (*Server, error) {
	if d.Config == nil {
		d.Config = config.DefaultConfig()
	}
	if d.Contact == nil {
		return nil, errors.New("server: contact service is required")
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	s := &Server{
		cfg:       d.Config,
		site:      d.Site,
		contact:   d.Contact,
		analytics: d.Analytics,
		visits:    d.Visits,
		log:       d.Log,
		now:       d.Now,
	}

	if s.adminEnabled() {
		token, err := store.RandomToken()
		if err != nil {
			return nil, fmt.Errorf("generating admin token: %w", err)
		}
		s.adminToken = token
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), requestID(), requestLogger(s.log))
	if s.visits != nil {
		s.engine.Use(visitorTracking(s.visits))
	}
	s.routes()

	s.handler = s.engine
	if len(s.cfg.Server.AllowedOrigins) > 0 {
		s.handler = contactCORS(s.cfg.Server.AllowedOrigins, s.engine)
	}
	return s, nil
}

func (s *Server) routes() {
	r := s.engine

	r.StaticFS("/static", http.FS(assets.Static()))

	r.GET("/", s.index)
	r.POST("/contact", s.submitContact)
	r.GET("/contact-form", s.contactForm)
	r.GET("/healthz", s.health)

	if s.adminEnabled() {
		s.adminRoutes(r)
		s.log.Info("admin dashboard enabled", zap.String("path", "/admin/login"))
	}

	r.NoRoute(s.notFound)
}

func (s *Server) adminEnabled() bool {
	return s.analytics != nil && s.cfg.Analytics.Enabled && s.cfg.Admin.Enabled()
}

// Handler is the engine, wrapped for cross-origin contact posts when
// origins are configured.
func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on the configured address until ctx is cancelled, then shuts
// down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
