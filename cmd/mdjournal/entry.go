package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mdjournal/internal/modules/journal/dto"
)

const previewWidth = 60

func newEntryCmd(flags *globalFlags) *cobra.Command {
	entry := &cobra.Command{Use: "entry", Short: "Write and manage journal entries"}
	entry.AddCommand(
		newEntryAddCmd(flags),
		newEntryListCmd(flags),
		newEntryShowCmd(flags),
		newEntryEditCmd(flags),
		newEntryDeleteCmd(flags),
		newEntryClearCmd(flags),
	)
	return entry
}

func newEntryAddCmd(flags *globalFlags) *cobra.Command {
	var mood string
	var tags []string
	add := &cobra.Command{
		Use:   "add [text...]",
		Short: "Add an entry (reads stdin when no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args, " ")
			if len(args) == 0 {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				content = string(raw)
			}
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			out, err := app.JournalCLI.Add(cmd.Context(), content, mood, tags)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s note=%s\n", out.ID, out.NotePath)
			return nil
		},
	}
	add.Flags().StringVar(&mood, "mood", "", "mood: very-bad|bad|neutral|good|great|anxious|peaceful")
	add.Flags().StringSliceVar(&tags, "tags", nil, "tags")
	return add
}

func newEntryListCmd(flags *globalFlags) *cobra.Command {
	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			entries, err := app.JournalCLI.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no entries")
				return nil
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					e.ID, stamp(e.CreatedAt, app.Config.Location), moodCell(e), preview(e.Content))
			}
			return nil
		},
	}
	list.Flags().IntVar(&limit, "limit", 0, "maximum entries to show (0 = all)")
	return list
}

func newEntryShowCmd(flags *globalFlags) *cobra.Command {
	var entryID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show one entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(entryID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			e, err := app.JournalCLI.Show(cmd.Context(), entryID)
			if err != nil {
				return err
			}
			mood := e.MoodLabel
			if mood == "" {
				mood = "not recorded"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\ncreated: %s\nmood: %s\ntags: %s\nnote: %s\n\n%s\n",
				e.ID, stamp(e.CreatedAt, app.Config.Location), mood, strings.Join(e.Tags, ", "), e.NotePath, e.Content)
			return nil
		},
	}
	show.Flags().StringVar(&entryID, "id", "", "entry id")
	return show
}

func newEntryEditCmd(flags *globalFlags) *cobra.Command {
	var entryID, content, mood string
	var tags []string
	edit := &cobra.Command{
		Use:   "edit --id <id>",
		Short: "Change the text, mood or tags of an entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(entryID) == "" {
				return fmt.Errorf("--id is required")
			}
			input := dto.UpdateInput{ID: entryID}
			if cmd.Flags().Changed("content") {
				input.Content = &content
			}
			if cmd.Flags().Changed("mood") {
				input.Mood = &mood
			}
			if cmd.Flags().Changed("tags") {
				input.Tags = tags
				input.ReplaceTags = true
			}
			if input.Content == nil && input.Mood == nil && !input.ReplaceTags {
				return fmt.Errorf("nothing to change: pass --content, --mood or --tags")
			}
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			out, err := app.JournalCLI.Edit(cmd.Context(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", out.ID)
			return nil
		},
	}
	edit.Flags().StringVar(&entryID, "id", "", "entry id")
	edit.Flags().StringVar(&content, "content", "", "new entry text")
	edit.Flags().StringVar(&mood, "mood", "", "new mood (empty clears it)")
	edit.Flags().StringSliceVar(&tags, "tags", nil, "replacement tags")
	return edit
}

func newEntryDeleteCmd(flags *globalFlags) *cobra.Command {
	var entryID string
	del := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete an entry and its note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(entryID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			if err := app.JournalCLI.Delete(cmd.Context(), entryID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", entryID)
			return nil
		},
	}
	del.Flags().StringVar(&entryID, "id", "", "entry id")
	return del
}

func newEntryClearCmd(flags *globalFlags) *cobra.Command {
	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear --yes",
		Short: "Delete every entry in the vault",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the journal without --yes")
			}
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			n, err := app.JournalCLI.Clear(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cleared %d entries\n", n)
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return clearCmd
}

func stamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("2006-01-02 15:04")
}

func moodCell(e dto.EntryOutput) string {
	if e.MoodLabel == "" {
		return "-"
	}
	return e.MoodEmoji + " " + e.MoodLabel
}

func preview(content string) string {
	line := strings.Join(strings.Fields(content), " ")
	runes := []rune(line)
	if len(runes) <= previewWidth {
		return line
	}
	return string(runes[:previewWidth-1]) + "…"
}
