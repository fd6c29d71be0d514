package cmd

import (
	"fmt"

	"github.com/abhisek/disha/internal/store"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit [attempt-id]",
	Short: "Send results to the configured webhook",
	Long:  "Re-sends the most recent attempt (or the named one) to the webhook URL from the config file or DISHA_WEBHOOK_URL.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		hook := newHook(cfg)
		if hook == nil {
			return fmt.Errorf("no webhook URL configured; set webhook.url in the config file or DISHA_WEBHOOK_URL")
		}

		ctx := cmd.Context()
		repo := st.AttemptRepo()

		var attempt *store.Attempt
		if len(args) == 1 {
			attempt, err = repo.Get(ctx, args[0])
		} else {
			attempt, err = repo.Latest(ctx)
		}
		if err != nil {
			return fmt.Errorf("load attempt: %w", err)
		}
		if attempt == nil {
			fmt.Println("No attempts found. Run `disha start` to take the quiz.")
			return nil
		}

		if hook.Submit(ctx, attempt.Results, attempt.Answers) {
			fmt.Fprintln(cmd.OutOrStdout(), "Submitted.")
			return nil
		}
		return fmt.Errorf("webhook submission failed")
	},
}
