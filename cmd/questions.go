package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tidenav/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the quiz questions and their answer traits",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		for _, q := range quiz.Questions() {
			fmt.Fprintf(w, "%d. %s\n", q.ID, q.Prompt)
			for i, o := range q.Options {
				fmt.Fprintf(w, "   %d) %-36s  %-14s  %3d°\n", i+1, o.Label, o.Value, o.Direction)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, strings.Repeat("─", 64))
		fmt.Fprintf(w, "%d questions\n", len(quiz.Questions()))
	},
}
