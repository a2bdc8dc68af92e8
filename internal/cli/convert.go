package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertIn string
var convertOut string

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Rewrite a legacy export CSV into the index schema",
	Long: `Convert the raw export format (record type, title, link, textual date,
page count) into the 7-column index schema: dates become ISO, file names
derive from the link, and the source page and page count move into the
Options column.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application := newApp()
		defer application.Close()

		written, err := application.Convert(cmd.Context(), convertIn, convertOut)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render(fmt.Sprintf("%d rows written to %s", written, convertOut)))
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertIn, "in", "", "legacy export CSV")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "output index CSV")
	_ = convertCmd.MarkFlagRequired("in")
	_ = convertCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(convertCmd)
}
