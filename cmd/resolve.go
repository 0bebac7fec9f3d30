package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tidenav/internal/archetype"
	"github.com/abhisek/tidenav/internal/trait"
)

// resolveOutput is the --json shape of the resolve command.
type resolveOutput struct {
	Answers []trait.Tag      `json:"answers"`
	Rule    string           `json:"rule"`
	Result  archetype.Result `json:"result"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <trait>...",
	Short: "Classify a sequence of trait answers without the TUI",
	Long: "Resolve prints the archetype for the given answers. Traits the quiz\n" +
		"does not know are ignored, and matching is case-sensitive; no traits at\n" +
		"all resolves to the fallback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		answers := make([]trait.Tag, len(args))
		for i, a := range args {
			answers[i] = trait.Tag(a)
		}

		r := archetype.Default()
		out := resolveOutput{Answers: answers, Rule: "fallback", Result: r.Resolve(answers)}
		if rule, ok := r.Match(answers); ok {
			out.Rule = rule.Name
		}

		w := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Fprintf(w, "%s %s\n", out.Result.Symbol, out.Result.Title)
		fmt.Fprintf(w, "rule:      %s\n", out.Rule)
		fmt.Fprintf(w, "direction: %s\n\n", out.Result.Direction)
		fmt.Fprintln(w, out.Result.Description)
		fmt.Fprintf(w, "\nThe Tide Speaks: %s\n", out.Result.Guidance)
		return nil
	},
}

func init() {
	resolveCmd.Flags().Bool("json", false, "Print the result as JSON")
}
