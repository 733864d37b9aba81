package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Itsme-Debapriya/portfolio/internal/config"
	"github.com/Itsme-Debapriya/portfolio/internal/contact"
	"github.com/Itsme-Debapriya/portfolio/internal/server"
	"github.com/Itsme-Debapriya/portfolio/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	gin.SetMode(cfg.Server.Mode)

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	site, err := loadContent(cfg)
	if err != nil {
		return err
	}

	if !cfg.Mail.Configured() {
		log.Warn("mail provider is not configured, contact submissions will fail",
			zap.String("provider", string(cfg.Mail.Provider)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := server.Deps{
		Config: cfg,
		Site:   site,
		Log:    log,
	}
	contactOpts := []contact.Option{contact.WithLogger(log.Named("contact"))}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Analytics.Enabled {
		st, tracker, err := openAnalytics(cfg, log)
		if err != nil {
			return err
		}
		defer st.Close()
		defer tracker.Close()

		deps.Analytics = st
		deps.Visits = tracker
		contactOpts = append(contactOpts, contact.WithRecorder(st))

		g.Go(func() error {
			runCleanup(gctx, st, cfg.Analytics.Retention, log)
			return nil
		})
	}

	deps.Contact = contact.NewService(cfg.Mail.Sender(), contactOpts...)

	srv, err := server.New(deps)
	if err != nil {
		return err
	}
	g.Go(func() error { return srv.Run(gctx) })

	return g.Wait()
}

func openAnalytics(cfg *config.Config, log *zap.Logger) (*store.Store, *store.Tracker, error) {
	var opts []store.Option
	if cfg.Analytics.Salt != "" {
		opts = append(opts, store.WithSalt(cfg.Analytics.Salt))
	} else {
		log.Warn("analytics.salt is not set, unique visitor counts reset on restart")
	}

	st, err := store.Open(cfg.Analytics.DBPath, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	log.Info("visitor tracking enabled with hashed IP addresses",
		zap.String("db", cfg.Analytics.DBPath))
	return st, store.NewTracker(st, log.Named("tracker"), cfg.Analytics.QueueSize), nil
}

// runCleanup deletes expired visits at startup and then daily until ctx ends.
func runCleanup(ctx context.Context, st *store.Store, retention time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		n, err := st.Cleanup(ctx, retention)
		switch {
		case err != nil && ctx.Err() == nil:
			log.Error("visitor cleanup", zap.Error(err))
		case n > 0:
			log.Info("removed expired visitor records", zap.Int64("count", n))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
