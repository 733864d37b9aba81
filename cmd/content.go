package cmd

import (
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the site content as YAML",
	Long: `Prints the content the site renders, either the built-in defaults or
the configured override, as YAML. Redirect it to a file to start an override.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		site, err := loadContent(cfg)
		if err != nil {
			return err
		}
		return site.Dump(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(contentCmd)
}
