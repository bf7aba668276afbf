package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInsightsCmd(flags *globalFlags) *cobra.Command {
	insights := &cobra.Command{Use: "insights", Short: "Read what the journal says"}

	insights.AddCommand(&cobra.Command{
		Use:   "sentiment <text...>",
		Short: "Score a piece of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			s, err := app.InsightsCLI.Sentiment(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "score: %+.2f (%s) positive=%d negative=%d\n", s.Score, s.Label, s.Positive, s.Negative)
			return nil
		},
	})

	var limit int
	series := &cobra.Command{
		Use:   "series",
		Short: "Sentiment of recent entries, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			samples, err := app.InsightsCLI.Series(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(samples) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no entries")
				return nil
			}
			for _, s := range samples {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%+.2f\n", stamp(s.Date, app.Config.Location), s.Score)
			}
			return nil
		},
	}
	series.Flags().IntVar(&limit, "limit", 0, "number of entries (default from config)")

	insights.AddCommand(series)

	insights.AddCommand(&cobra.Command{
		Use:   "themes",
		Short: "Recurring themes across the journal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			themes, err := app.InsightsCLI.Themes(cmd.Context())
			if err != nil {
				return err
			}
			if len(themes) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no themes yet")
				return nil
			}
			for _, th := range themes {
				kind := "topic"
				if th.Emotion {
					kind = "emotion"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%+.2f\t%s\n", th.Term, th.Count, th.Sentiment, kind)
			}
			return nil
		},
	})

	insights.AddCommand(&cobra.Command{
		Use:   "prompts",
		Short: "Writing prompts drawn from recent entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			prompts, err := app.InsightsCLI.Prompts(cmd.Context())
			if err != nil {
				return err
			}
			for i, p := range prompts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, p)
			}
			return nil
		},
	})

	insights.AddCommand(&cobra.Command{
		Use:   "weekly",
		Short: "Summary of the last seven days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			summary, err := app.InsightsCLI.Weekly(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	})

	insights.AddCommand(&cobra.Command{
		Use:   "anxiety",
		Short: "Anxiety patterns in recent entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			a, err := app.InsightsCLI.Anxiety(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !a.Detected {
				_, _ = fmt.Fprintln(out, "no anxiety patterns in recent entries")
				return nil
			}
			_, _ = fmt.Fprintf(out, "level: %s (score %d)\n", a.Level, a.Score)
			_, _ = fmt.Fprintf(out, "triggers: %s\n", strings.Join(a.Triggers, ", "))
			for _, p := range a.Patterns {
				_, _ = fmt.Fprintf(out, "pattern: %s\n", p)
			}
			for _, s := range a.Suggestions {
				_, _ = fmt.Fprintf(out, "try: %s\n", s)
			}
			if a.Breathing {
				_, _ = fmt.Fprintln(out, "a breathing exercise may help right now")
			}
			return nil
		},
	})

	var entryID string
	clarity := &cobra.Command{
		Use:   "clarity --id <id>",
		Short: "How an entry moves from confusion to clarity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(entryID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			c, err := app.InsightsCLI.Clarity(cmd.Context(), entryID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "before: confusion=%d stress=%d uncertainty=%d\n", c.Confusion, c.Stress, c.Uncertainty)
			_, _ = fmt.Fprintf(out, "after: clarity=%d resolution=%d peace=%d\n", c.Clarity, c.Resolution, c.Peace)
			_, _ = fmt.Fprintf(out, "improvement: %+.2f\n", c.Improvement)
			for _, in := range c.Insights {
				_, _ = fmt.Fprintf(out, "- %s\n", in)
			}
			return nil
		},
	}
	clarity.Flags().StringVar(&entryID, "id", "", "entry id")
	insights.AddCommand(clarity)

	insights.AddCommand(&cobra.Command{
		Use:   "overview",
		Short: "Themes, prompts, weekly summary and series as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			o, err := app.InsightsCLI.Overview(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(o)
		},
	})

	return insights
}
