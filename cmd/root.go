package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/prepmate/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepmate",
	Short: "Exam and placement preparation backend",
	Long: "Prepmate: spaced repetition scheduling, adaptive roadmaps, and\n" +
		"AI question generation for exam and placement preparation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPMATE_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
