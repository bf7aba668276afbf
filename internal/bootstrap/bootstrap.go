package bootstrap

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	"mdjournal/internal/api"
	insightsinadapter "mdjournal/internal/modules/insights/adapter/in"
	insightsoutadapter "mdjournal/internal/modules/insights/adapter/out"
	insightsdomain "mdjournal/internal/modules/insights/domain"
	insightsin "mdjournal/internal/modules/insights/port/in"
	insightsservice "mdjournal/internal/modules/insights/service"
	insightsusecase "mdjournal/internal/modules/insights/usecase"
	journalinadapter "mdjournal/internal/modules/journal/adapter/in"
	journaloutadapter "mdjournal/internal/modules/journal/adapter/out"
	journalin "mdjournal/internal/modules/journal/port/in"
	journalservice "mdjournal/internal/modules/journal/service"
	journalusecase "mdjournal/internal/modules/journal/usecase"
	"mdjournal/internal/platform/clock"
	"mdjournal/internal/platform/config"
	"mdjournal/internal/platform/id"
	"mdjournal/internal/platform/logger"
	uiapp "mdjournal/internal/ui/app"
)

type App struct {
	JournalCLI  journalinadapter.CLIHandler
	JournalTUI  journalinadapter.TUIHandler
	InsightsCLI insightsinadapter.CLIHandler

	Journal  journalin.Usecase
	Insights insightsin.Usecase

	Config config.Config
	Log    hclog.Logger
}

func New(cfg config.Config, log hclog.Logger) (*App, error) {
	log = logger.OrDiscard(log)
	clk := clock.SystemClock{}
	ids := id.UUID{}

	projector, err := journaloutadapter.NewSQLiteEntryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new entry projector: %w", err)
	}
	journalSvc := journalservice.NewEntryService(
		clk,
		ids,
		journaloutadapter.NewVaultEntryStore(cfg.VaultPath, cfg.Location),
		projector,
		journaloutadapter.NewFileDraftStore(cfg.DraftPath),
		cfg.Location,
		log,
	)
	journalUC := journalusecase.NewInteractor(journalSvc)

	analyzer, err := loadAnalyzer(cfg.LexiconPath)
	if err != nil {
		return nil, err
	}
	cache, err := insightsoutadapter.NewSQLiteCache(cfg.DBPath, clk)
	if err != nil {
		return nil, fmt.Errorf("new insight cache: %w", err)
	}
	insightsUC := insightsusecase.NewInteractor(insightsservice.NewInsightsService(
		analyzer,
		insightsoutadapter.NewJournalEntrySource(journalUC),
		cache,
		clk,
		cfg.Location,
		cfg.SeriesLimit,
		log,
	))

	return &App{
		JournalCLI:  journalinadapter.NewCLIHandler(journalUC),
		JournalTUI:  journalinadapter.NewTUIHandler(journalUC),
		InsightsCLI: insightsinadapter.NewCLIHandler(insightsUC),
		Journal:     journalUC,
		Insights:    insightsUC,
		Config:      cfg,
		Log:         log,
	}, nil
}

// loadAnalyzer prefers a lexicon.yaml in the state dir over the embedded one.
func loadAnalyzer(path string) (*insightsdomain.Analyzer, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return insightsdomain.Default(), nil
		}
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	lex, err := insightsdomain.ParseLexicon(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return insightsdomain.NewAnalyzer(lex), nil
}

func NewServer(app *App, addr string) *api.Server {
	if addr == "" {
		addr = app.Config.ServeAddr
	}
	return api.NewServer(api.Config{Addr: addr}, app.Journal, app.Insights, app.Log)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.Config.VaultPath, app.Config.Location, app.JournalTUI, app.InsightsCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
