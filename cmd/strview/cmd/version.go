package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strview/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.out.Version(version.Get())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
