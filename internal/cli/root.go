// Package cli exposes the archivecatalog subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ArchiveCatalog/internal/app"
	"ArchiveCatalog/internal/config"
	"ArchiveCatalog/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "archivecatalog",
	Short: "Maintain a digital-archive catalogue from CSV index files",
	Long: `archivecatalog keeps a scanned-document archive browsable: it upgrades
index CSV files across schema versions, checks them against the local file
tree, and aggregates them into a hierarchical HTML catalogue.

Configuration is read from the YAML file named by ARCHIVE_CATALOG_CONFIG;
ARCHIVE_CATALOG_BASE_DIR and DATABASE_DSN override it.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *app.Application {
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)
	return app.New(cfg, logger)
}
