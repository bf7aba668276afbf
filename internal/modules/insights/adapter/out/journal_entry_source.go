package out

import (
	"context"

	"mdjournal/internal/modules/insights/domain"
	insightsout "mdjournal/internal/modules/insights/port/out"
	journaldto "mdjournal/internal/modules/journal/dto"
	journalin "mdjournal/internal/modules/journal/port/in"
)

type JournalEntrySource struct {
	journal journalin.Usecase
}

func NewJournalEntrySource(journal journalin.Usecase) insightsout.EntrySource {
	return &JournalEntrySource{journal: journal}
}

func (a *JournalEntrySource) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	entries, err := a.journal.List(ctx, journaldto.ListInput{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Entry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toEntry(entry))
	}
	return out, nil
}

func (a *JournalEntrySource) GetEntry(ctx context.Context, id string) (domain.Entry, error) {
	entry, err := a.journal.Get(ctx, id)
	if err != nil {
		return domain.Entry{}, err
	}
	return toEntry(entry), nil
}

func toEntry(entry journaldto.EntryOutput) domain.Entry {
	return domain.Entry{ID: entry.ID, CreatedAt: entry.CreatedAt, Content: entry.Content}
}
