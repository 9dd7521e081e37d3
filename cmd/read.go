package cmd

import (
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Start a timed read-aloud session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRead(cmd)
	},
}

func init() {
	readCmd.Flags().String("audio", "", "Path to a recorded read-aloud attempt to transcribe")
}
