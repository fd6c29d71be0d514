package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear saved data",
	Long:  "Clears the saved profile and any paused quiz. With --all, also deletes every stored attempt.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := st.ProgressRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}
		if err := st.ProfileRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}

		all, _ := cmd.Flags().GetBool("all")
		if all {
			if err := st.AttemptRepo().DeleteAll(ctx); err != nil {
				return fmt.Errorf("delete attempts: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared profile, paused quiz, and all attempts.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cleared profile and paused quiz. Attempts kept (use --all to delete them).")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also delete every stored attempt")
}
