package cli

import (
	"github.com/spf13/cobra"
)

var buildCSV string
var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the HTML catalogue from an index CSV",
	Long: `Aggregate an index CSV into logical documents (merging the PDF and DOC
variants of one work) and render the hierarchical HTML catalogue, in the
order the rows appear in the file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application := newApp()
		defer application.Close()

		diags, err := application.Build(cmd.Context(), buildCSV, buildOut)
		if err != nil {
			return err
		}
		reportDiagnostics(cmd.ErrOrStderr(), diags)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildCSV, "csv", "index.csv", "index CSV file")
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output HTML file (default stdout)")
	rootCmd.AddCommand(buildCmd)
}
