package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Itsme-Debapriya/portfolio/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the portfolio as static files",
	Long: `Renders index.html and 404.html with the script and stylesheet into
a directory that any static host can serve. The contact form posts to
--contact-endpoint, which must be a running portfolio server whose
server.allowed_origins lists the static site's origin.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "dist", "output directory")
	exportCmd.Flags().String("contact-endpoint", "", "URL the contact form posts to (defaults to /contact)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	content, err := loadContent(cfg)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	endpoint, _ := cmd.Flags().GetString("contact-endpoint")

	res, err := site.Export(output, site.Options{
		Site:          content,
		Year:          time.Now().Year(),
		ContactAction: endpoint,
	})
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Static site written to %s (%d pages, %d assets)\n", output, res.Pages, res.Assets)
	return nil
}
