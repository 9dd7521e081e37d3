package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/auth"
	"github.com/abhisek/vidya/internal/ledger"
)

var registerCmd = &cobra.Command{
	Use:   "register <mobile> <pin>",
	Short: "Create an account so progress can follow you across devices",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, _, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		account, err := auth.NewService(st.Accounts()).Register(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		// Seed the account's profile so the first session finds one.
		name, _ := cmd.Flags().GetString("name")
		grade, _ := cmd.Flags().GetString("grade")
		led := ledger.New(st.Profiles(), account.ProfileKey)
		if _, err := led.LoadOrCreate(ctx, name, grade); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}

		fmt.Printf("Account created. Run `vidya study --profile %s` to use it.\n", account.Mobile)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <mobile> <pin>",
	Short: "Check your account credentials",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, _, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		account, err := auth.NewService(st.Accounts()).Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Welcome back. Run `vidya study --profile %s` to continue.\n", account.Mobile)
		return nil
	},
}
