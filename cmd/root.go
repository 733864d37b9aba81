package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Itsme-Debapriya/portfolio/internal/config"
	"github.com/Itsme-Debapriya/portfolio/internal/content"
	"github.com/Itsme-Debapriya/portfolio/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio website",
	Long: `Serves a single-page personal portfolio with a contact form that
forwards messages through EmailJS or SMTP. The page can also be exported
as static files.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log.Level, cfg.Log.Development)
}

// loadContent returns the compiled-in content, or the override file when one
// is configured.
func loadContent(cfg *config.Config) (content.Site, error) {
	if cfg.Content.Path == "" {
		return content.Default(), nil
	}
	return content.LoadFile(cfg.Content.Path)
}
