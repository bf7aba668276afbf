package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	journalout "mdjournal/internal/modules/journal/adapter/out"
	"mdjournal/internal/modules/journal/dto"
	journalin "mdjournal/internal/modules/journal/port/in"
	"mdjournal/internal/modules/journal/service"
	"mdjournal/internal/modules/journal/usecase"
	"mdjournal/internal/platform/clock"
	apperrors "mdjournal/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type seqIDs struct{ n int }

func (s *seqIDs) New() string {
	s.n++
	return fmt.Sprintf("entry-%03d", s.n)
}

type steppingClock struct {
	at   time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	now := c.at
	c.at = c.at.Add(c.step)
	return now
}

func newJournal(t *testing.T, clk clock.Clock) (journalin.Usecase, string, string) {
	t.Helper()
	vault := t.TempDir()
	dbPath := filepath.Join(vault, ".mdjournal", "mdjournal.db")
	projector, err := journalout.NewSQLiteEntryProjector(dbPath)
	require.NoError(t, err)
	svc := service.NewEntryService(
		clk,
		&seqIDs{},
		journalout.NewVaultEntryStore(vault, time.UTC),
		projector,
		journalout.NewFileDraftStore(filepath.Join(vault, ".mdjournal", "draft.json")),
		time.UTC,
		nil,
	)
	return usecase.NewInteractor(svc), vault, dbPath
}

func countRows(t *testing.T, dbPath string) int {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n))
	return n
}

func TestAddListGetEditDeleteAndReindex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	start := time.Date(2026, 3, 9, 20, 15, 0, 0, time.UTC)
	uc, vault, dbPath := newJournal(t, &steppingClock{at: start, step: time.Hour})

	first, err := uc.Add(ctx, dto.AddInput{Content: "  Felt calm after a long walk.  ", Mood: "peaceful", Tags: []string{"Walk", "walk"}})
	require.NoError(t, err)
	assert.Equal(t, "entry-001", first.ID)
	assert.Equal(t, "Felt calm after a long walk.", first.Content)
	assert.Equal(t, "Peaceful", first.MoodLabel)
	assert.Equal(t, []string{"walk"}, first.Tags)
	assert.Equal(t, filepath.Join(vault, "entries", "2026", "03", "09", "201500-felt-calm-after-a-long-walk.md"), first.NotePath)

	raw, err := os.ReadFile(first.NotePath)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "mood: peaceful")
	assert.Contains(t, text, "<!-- mdjournal:analysis:start -->\nmood: Peaceful 😌\n<!-- mdjournal:analysis:end -->")

	second, err := uc.Add(ctx, dto.AddInput{Content: "Stressed about the deadline."})
	require.NoError(t, err)

	list, err := uc.List(ctx, dto.ListInput{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, first.ID, list[1].ID)

	limited, err := uc.List(ctx, dto.ListInput{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second.ID, limited[0].ID)

	got, err := uc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Felt calm after a long walk.", got.Content, "managed block is stripped on read")
	assert.Equal(t, "peaceful", got.Mood)
	assert.True(t, start.Equal(got.CreatedAt))

	content := "Felt calm after a long walk. Then dinner with family."
	mood := "great"
	edited, err := uc.Update(ctx, dto.UpdateInput{ID: first.ID, Content: &content, Mood: &mood})
	require.NoError(t, err)
	assert.Equal(t, first.NotePath, edited.NotePath, "edits keep the note path")
	assert.False(t, edited.UpdatedAt.IsZero())
	got, err = uc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, content, got.Content)
	assert.Equal(t, "great", got.Mood)
	assert.Equal(t, []string{"walk"}, got.Tags)

	assert.Equal(t, 2, countRows(t, dbPath))
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM entries`)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	assert.Equal(t, 0, countRows(t, dbPath))
	require.NoError(t, uc.Reindex(ctx))
	assert.Equal(t, 2, countRows(t, dbPath))

	require.NoError(t, uc.Delete(ctx, second.ID))
	_, err = uc.Get(ctx, second.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, 1, countRows(t, dbPath))
}

func TestAddRejectsBlankContentAndUnknownMood(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, _, _ := newJournal(t, clock.Fixed{At: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)})

	_, err := uc.Add(ctx, dto.AddInput{Content: " \n\t "})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = uc.Add(ctx, dto.AddInput{Content: "ok", Mood: "ecstatic"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	list, err := uc.List(ctx, dto.ListInput{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateAndDeleteMissingEntry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, _, _ := newJournal(t, clock.Fixed{At: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)})

	content := "x"
	_, err := uc.Update(ctx, dto.UpdateInput{ID: "nope", Content: &content})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "nope"), apperrors.ErrNotFound)
}

func TestSameSecondEntriesGetDistinctNotes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, _, _ := newJournal(t, clock.Fixed{At: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)})

	a, err := uc.Add(ctx, dto.AddInput{Content: "same words"})
	require.NoError(t, err)
	b, err := uc.Add(ctx, dto.AddInput{Content: "same words"})
	require.NoError(t, err)
	assert.NotEqual(t, a.NotePath, b.NotePath)

	list, err := uc.List(ctx, dto.ListInput{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestClearRemovesEveryNote(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, vault, dbPath := newJournal(t, &steppingClock{at: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), step: 30 * time.Hour})
	for i := range 3 {
		_, err := uc.Add(ctx, dto.AddInput{Content: fmt.Sprintf("entry number %d", i)})
		require.NoError(t, err)
	}
	n, err := uc.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	list, err := uc.List(ctx, dto.ListInput{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 0, countRows(t, dbPath))

	remaining, err := os.ReadDir(filepath.Join(vault, "entries"))
	if err == nil {
		assert.Empty(t, remaining, "empty date folders are pruned")
	}
}

func TestMalformedNoteFailsListWithPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, vault, _ := newJournal(t, clock.Fixed{At: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)})
	bad := filepath.Join(vault, "entries", "2026", "03", "09", "bad.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(bad), 0o755))
	require.NoError(t, os.WriteFile(bad, []byte("---\nid: x\ncreated_at: yesterday\n---\nhello\n"), 0o644))

	_, err := uc.List(ctx, dto.ListInput{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "bad.md"))
}

func TestDraftLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, _, _ := newJournal(t, clock.Fixed{At: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)})

	_, err := uc.LoadDraft(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNoDraft)

	require.NoError(t, uc.SaveDraft(ctx, dto.DraftInput{Content: "half a thought", Mood: "anxious"}))
	draft, err := uc.LoadDraft(ctx)
	require.NoError(t, err)
	assert.Equal(t, "half a thought", draft.Content)
	assert.Equal(t, "anxious", draft.Mood)

	assert.ErrorIs(t, uc.SaveDraft(ctx, dto.DraftInput{Content: "x", Mood: "meh"}), apperrors.ErrInvalidInput)

	require.NoError(t, uc.ClearDraft(ctx))
	require.NoError(t, uc.ClearDraft(ctx))
	_, err = uc.LoadDraft(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNoDraft)
}

func TestSeedDemoSpansWeeklyWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _, dbPath := newJournal(t, clock.Fixed{At: now})

	n, err := uc.SeedDemo(ctx)
	require.NoError(t, err)
	require.Positive(t, n)

	list, err := uc.List(ctx, dto.ListInput{})
	require.NoError(t, err)
	require.Len(t, list, n)
	assert.Equal(t, n, countRows(t, dbPath))

	inside, outside := 0, 0
	for _, e := range list {
		assert.Equal(t, []string{"demo"}, e.Tags)
		if now.Sub(e.CreatedAt) <= 7*24*time.Hour {
			inside++
		} else {
			outside++
		}
	}
	assert.Positive(t, inside)
	assert.Positive(t, outside)
}

func TestMoodsListsEveryOption(t *testing.T) {
	t.Parallel()
	uc, _, _ := newJournal(t, clock.Fixed{At: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)})
	moods := uc.Moods()
	require.Len(t, moods, 7)
	assert.Equal(t, dto.MoodOption{Value: "very-bad", Label: "Struggling", Emoji: "😞"}, moods[0])
	assert.Equal(t, "peaceful", moods[6].Value)
}
