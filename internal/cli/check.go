package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkIn string
var checkOut string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Drop index rows whose document file is missing locally",
	Long: `Copy an index CSV, keeping heading rows and the document rows whose
derived file name exists under the archive base directory. Dropped rows
are reported with their remote URL for manual follow-up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application := newApp()
		defer application.Close()

		result, err := application.Check(cmd.Context(), checkIn, checkOut)
		if err != nil {
			return err
		}

		out := cmd.ErrOrStderr()
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Files present = %d", result.Present)))
		fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("Files missing = %d", result.Missing)))
		for _, url := range result.MissingURLs {
			fmt.Fprintln(out, dimStyle.Render("check with [ curl --silent -I "+url+" ]"))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkIn, "in", "index.csv", "input index CSV")
	checkCmd.Flags().StringVar(&checkOut, "out", "index-checked.csv", "output CSV")
	rootCmd.AddCommand(checkCmd)
}
