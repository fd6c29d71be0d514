package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/disha/internal/report"
	"github.com/abhisek/disha/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [attempt-id]",
	Short: "Export quiz results as JSON",
	Long:  "Writes the most recent attempt (or the named one) as an indented JSON document.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

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

		dir, _ := cmd.Flags().GetString("out")
		if dir == "" {
			dir = cfg.Export.Dir
		}

		doc := report.Build(attempt.Results, attempt.Answers, time.Now())
		path, err := report.Write(doc, dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Exported to", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Directory to write the export into (default: config export dir or cwd)")
}
