package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepmate/internal/companies"
	"github.com/abhisek/prepmate/internal/config"
	"github.com/abhisek/prepmate/internal/llm"
	"github.com/abhisek/prepmate/internal/roadmap"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a preparation roadmap and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		company, _ := cmd.Flags().GetString("company")
		role, _ := cmd.Flags().GetString("role")
		dateStr, _ := cmd.Flags().GetString("date")
		hours, _ := cmd.Flags().GetFloat64("hours")

		interviewDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", dateStr)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		// Generation works without a provider; unknown companies just
		// fall back to the general bank.
		var provider llm.Provider
		if cfg.LLM.Validate() == nil {
			provider, err = llm.NewProvider(context.Background(), cfg.LLM, nil)
			if err != nil {
				return fmt.Errorf("initialize LLM provider: %w", err)
			}
		}

		bank, err := companies.LoadBank()
		if err != nil {
			return fmt.Errorf("load company banks: %w", err)
		}

		ctx := context.Background()
		questions, err := companies.NewService(bank, provider, logger).Questions(ctx, company, role)
		if err != nil {
			return fmt.Errorf("fetch company questions: %w", err)
		}

		gen := &roadmap.Generator{}
		plan, err := gen.Generate(roadmap.Input{
			Topics:          questions.TopicSpecs(),
			SystemDesign:    questions.SystemDesign,
			BehavioralFocus: questions.BehavioralFocus,
			InterviewDate:   interviewDate,
			HoursPerDay:     hours,
		}, time.Now())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"company":     questions.Company,
			"role":        role,
			"data_source": questions.DataSource,
			"roadmap":     plan,
		})
	},
}

func init() {
	roadmapCmd.Flags().String("company", "", "Target company name")
	roadmapCmd.Flags().String("role", "SDE", "Target role")
	roadmapCmd.Flags().String("date", "", "Interview date (YYYY-MM-DD)")
	roadmapCmd.Flags().Float64("hours", 3, "Study hours available per day")
	roadmapCmd.MarkFlagRequired("company")
	roadmapCmd.MarkFlagRequired("date")
}
