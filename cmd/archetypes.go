package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tidenav/internal/archetype"
)

var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List archetype rules in evaluation order",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		r := archetype.Default()

		fmt.Fprintf(w, "%-3s  %-20s  %-24s  %s\n", "#", "Rule", "Title", "When")
		for i, rule := range r.Rules() {
			fmt.Fprintf(w, "%-3d  %-20s  %-24s  %s\n", i+1, rule.Name, rule.Result.Title, rule.When)
		}
		fb := r.Fallback()
		fmt.Fprintf(w, "%-3s  %-20s  %-24s  %s\n", "-", "fallback", fb.Title, "otherwise")
	},
}
