package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the selected profile's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This erases XP, badges, streaks and scores for the selected profile.")
			fmt.Println("Run again with --yes to confirm.")
			return nil
		}

		st, led, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := led.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("reset profile: %w", err)
		}

		fmt.Println("Profile erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
