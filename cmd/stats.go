package cmd

import (
	"fmt"
	"sort"

	"github.com/abhisek/disha/internal/quiz"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		attempts, err := st.AttemptRepo().List(cmd.Context(), 0)
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No attempts yet.")
			return nil
		}

		fmt.Fprintf(out, "Attempts: %d\n", len(attempts))
		fmt.Fprintf(out, "Latest:   %s (%s)\n",
			attempts[0].TakenAt.Format("Jan 02, 2006 15:04"), attempts[0].Profile.Name)

		// Frequency of the #1 match across attempts.
		counts := make(map[quiz.Track]int)
		for _, a := range attempts {
			if len(a.Results.TopTracks) > 0 {
				counts[a.Results.TopTracks[0].Track]++
			}
		}
		type freq struct {
			track quiz.Track
			n     int
		}
		var freqs []freq
		for t, n := range counts {
			freqs = append(freqs, freq{t, n})
		}
		sort.Slice(freqs, func(i, j int) bool {
			if freqs[i].n != freqs[j].n {
				return freqs[i].n > freqs[j].n
			}
			return freqs[i].track < freqs[j].track
		})

		fmt.Fprintln(out, "\nMost frequent top match:")
		for _, f := range freqs {
			fmt.Fprintf(out, "  %-28s %d\n", f.track.Info().Name, f.n)
		}
		return nil
	},
}
