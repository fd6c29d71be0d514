package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/disha/internal/scoring"
	"github.com/abhisek/disha/internal/store"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results [attempt-id]",
	Short: "Print quiz results to the terminal",
	Long:  "Prints the most recent attempt's results, or a specific attempt when an id is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
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

		printResults(cmd, attempt)
		return nil
	},
}

func printResults(cmd *cobra.Command, attempt *store.Attempt) {
	res := attempt.Results
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s — %s\n", res.UserProfile.Name, attempt.TakenAt.Format("Jan 02, 2006 15:04"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Top matches:")
	for i, tt := range res.TopTracks {
		info := tt.Track.Info()
		fmt.Fprintf(out, "  %d. %s %s — %d%% (score %d)\n", i+1, info.Icon, info.Name, tt.Percentage, tt.Score)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Routine tolerance: %d/10   Stress tolerance: %d/10   Clarity: %d/10   Confidence: %d/10\n",
		res.MeterScores.RoutineTolerance, res.MeterScores.StressTolerance,
		res.MeterScores.Clarity, res.Confidence)

	if len(res.RiskFlags) > 0 {
		flags := make([]string, len(res.RiskFlags))
		for i, f := range res.RiskFlags {
			flags[i] = string(f)
		}
		fmt.Fprintf(out, "Risk flags: %s\n", strings.Join(flags, "; "))
	}
	fmt.Fprintln(out)

	if res.StreamRecommendation != scoring.StreamRecNotApplicable {
		fmt.Fprintf(out, "Stream for 11th: %s\n", res.StreamRecommendation)
	}
	if res.JEERecommendation != scoring.JEENotApplicable {
		fmt.Fprintf(out, "JEE prep: %s\n", res.JEERecommendation)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Next steps:")
	for _, step := range res.NextSteps {
		fmt.Fprintf(out, "  %s\n", step)
	}
}
