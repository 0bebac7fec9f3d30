package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/tidenav/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "tidenav",
	Short: "Ocean-themed personality quiz",
	Long:  "Tide Navigator: five questions, one compass, and the archetype the tide reads from your answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(archetypesCmd)
	rootCmd.AddCommand(versionCmd)
}
