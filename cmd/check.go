package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and content",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if _, err := loadContent(cfg); err != nil {
			return fmt.Errorf("invalid content: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config:    ok\n")
		fmt.Fprintf(out, "content:   ok\n")
		if cfg.Mail.Configured() {
			fmt.Fprintf(out, "mail:      %s configured\n", cfg.Mail.Provider)
		} else {
			fmt.Fprintf(out, "mail:      %s NOT configured, submissions will fail\n", cfg.Mail.Provider)
		}
		fmt.Fprintf(out, "analytics: %v\n", cfg.Analytics.Enabled)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
