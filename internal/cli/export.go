package cli

import (
	"github.com/spf13/cobra"
)

var exportCSV string
var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the aggregated catalogue as YAML",
	Long: `Aggregate an index CSV exactly like build, but emit the catalogue as
YAML, one entry per composite key, preserving the input order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application := newApp()
		defer application.Close()

		diags, err := application.Export(cmd.Context(), exportCSV, exportOut)
		if err != nil {
			return err
		}
		reportDiagnostics(cmd.ErrOrStderr(), diags)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportCSV, "csv", "index.csv", "index CSV file")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output YAML file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
