package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/disha/internal/quiz"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the question bank",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a question bank file (default: the embedded bank)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var bank *quiz.Bank
		var err error
		if len(args) == 1 {
			raw, readErr := os.ReadFile(args[0])
			if readErr != nil {
				return readErr
			}
			bank, err = quiz.ParseBank(raw)
		} else {
			bank, err = quiz.LoadBank()
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %q v%s, %d questions\n",
			bank.Meta.Title, bank.Meta.Version, len(bank.Questions))
		return nil
	},
}

var bankPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "List the questions a given profile would see",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := quiz.LoadBank()
		if err != nil {
			return err
		}

		level, _ := cmd.Flags().GetString("level")
		stream, _ := cmd.Flags().GetString("stream")
		profile := quiz.UserProfile{
			Name:           "preview",
			EducationLevel: quiz.EducationLevel(level),
			CurrentStream:  quiz.Stream(stream),
		}
		if err := profile.Validate(); err != nil {
			return err
		}

		questions := quiz.FilterQuestions(bank.Questions, profile)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d of %d questions shown for %s:\n\n",
			len(questions), len(bank.Questions), quiz.LevelDisplay(profile.EducationLevel).Label)
		for _, q := range questions {
			kind := "single"
			if q.Type == quiz.TypeMulti {
				kind = fmt.Sprintf("multi, pick %d", q.MaxSelections(bank.Meta.MultiSelectMaxDefault))
			}
			fmt.Fprintf(out, "  %-4s [%s] %s\n", q.ID, kind, q.Prompt)
		}
		return nil
	},
}

func init() {
	bankPreviewCmd.Flags().String("level", string(quiz.Level10thPassed), "Education level to preview for")
	bankPreviewCmd.Flags().String("stream", "", "Stream for 11th/12th levels (pcm, pcb, pcmb, ...)")

	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankPreviewCmd)
}
