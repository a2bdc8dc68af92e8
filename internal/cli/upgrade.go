package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var upgradeIn string
var upgradeOut string

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade an old 7-column index CSV to the current schema",
	Long: `Rewrite an old-format index into the current 8-column schema with a
dedicated MD5 column. Checksums are pulled out of the Options column where
present and computed from the local files otherwise. The input is
validated strictly: a bad header or a malformed row aborts the upgrade.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application := newApp()
		defer application.Close()

		computed, err := application.Upgrade(cmd.Context(), upgradeIn, upgradeOut)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render(fmt.Sprintf("upgrade complete, %d checksums computed", computed)))
		return nil
	},
}

func init() {
	upgradeCmd.Flags().StringVar(&upgradeIn, "in", "", "old-format index CSV")
	upgradeCmd.Flags().StringVar(&upgradeOut, "out", "", "output index CSV")
	_ = upgradeCmd.MarkFlagRequired("in")
	_ = upgradeCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(upgradeCmd)
}
