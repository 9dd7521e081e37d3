package cmd

import (
	"github.com/abhisek/vidya/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vidya",
	Short: "Adaptive learning companion for rural students",
	Long:  "Vidya — offline-first terminal app that helps rural students build mastery through adaptive quizzes and read-aloud practice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudy(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VIDYA_DB env var)")
	rootCmd.PersistentFlags().String("profile", "", "Mobile number of a registered account (default: the local device profile)")
	rootCmd.PersistentFlags().String("name", "", "Learner name for a fresh profile")
	rootCmd.PersistentFlags().String("grade", "5", "Learner grade for a fresh profile")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VIDYA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// profileKey maps the --profile flag to a ledger key. Without the flag
// the shared device profile is used.
func profileKey(cmd *cobra.Command) string {
	if mobile, _ := cmd.Flags().GetString("profile"); mobile != "" {
		return "profile:" + mobile
	}
	return "local"
}
