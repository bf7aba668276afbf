// Package api serves the journal and its insights over local HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	hclog "github.com/hashicorp/go-hclog"

	insightsdto "mdjournal/internal/modules/insights/dto"
	insightsin "mdjournal/internal/modules/insights/port/in"
	journaldto "mdjournal/internal/modules/journal/dto"
	journalin "mdjournal/internal/modules/journal/port/in"
	apperrors "mdjournal/internal/platform/errors"
	"mdjournal/internal/platform/logger"
)

type Config struct {
	Addr string
}

type Server struct {
	app      *fiber.App
	journal  journalin.Usecase
	insights insightsin.Usecase
	cfg      Config
	log      hclog.Logger
}

type entryPayload struct {
	Content string   `json:"content"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
}

type entryPatch struct {
	Content *string   `json:"content"`
	Mood    *string   `json:"mood"`
	Tags    *[]string `json:"tags"`
}

type sentimentPayload struct {
	Text string `json:"text"`
}

func NewServer(cfg Config, journal journalin.Usecase, insights insightsin.Usecase, log hclog.Logger) *Server {
	log = logger.OrDiscard(log).Named("http")
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${status} | ${latency} | ${method} ${path}\n",
		Output: log.StandardWriter(&hclog.StandardLoggerOptions{ForceLevel: hclog.Debug}),
	}))

	srv := &Server{app: app, journal: journal, insights: insights, cfg: cfg, log: log}
	srv.registerRoutes()
	return srv
}

// Run listens until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()
	s.log.Info("journal service listening", "addr", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api/v1")
	api.Get("/entries", s.handleListEntries)
	api.Post("/entries", s.handleCreateEntry)
	api.Get("/entries/:id", s.handleGetEntry)
	api.Patch("/entries/:id", s.handleUpdateEntry)
	api.Delete("/entries/:id", s.handleDeleteEntry)
	api.Get("/moods", s.handleMoods)

	insights := api.Group("/insights")
	insights.Post("/sentiment", s.handleSentiment)
	insights.Get("/series", s.handleSeries)
	insights.Get("/themes", s.handleThemes)
	insights.Get("/prompts", s.handlePrompts)
	insights.Get("/weekly", s.handleWeekly)
	insights.Get("/anxiety", s.handleAnxiety)
	insights.Get("/clarity/:id", s.handleClarity)
	insights.Get("/overview", s.handleOverview)
}

func (s *Server) handleListEntries(c *fiber.Ctx) error {
	items, err := s.journal.List(c.UserContext(), journaldto.ListInput{Limit: c.QueryInt("limit", 0)})
	if err != nil {
		return httpError("list entries", err)
	}
	return c.JSON(fiber.Map{"data": items, "meta": fiber.Map{"count": len(items)}})
}

func (s *Server) handleCreateEntry(c *fiber.Ctx) error {
	var payload entryPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	entry, err := s.journal.Add(c.UserContext(), journaldto.AddInput{Content: payload.Content, Mood: payload.Mood, Tags: payload.Tags})
	if err != nil {
		return httpError("create entry", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": entry})
}

func (s *Server) handleGetEntry(c *fiber.Ctx) error {
	entry, err := s.journal.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError("get entry", err)
	}
	return c.JSON(fiber.Map{"data": entry})
}

func (s *Server) handleUpdateEntry(c *fiber.Ctx) error {
	var patch entryPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	input := journaldto.UpdateInput{ID: c.Params("id"), Content: patch.Content, Mood: patch.Mood}
	if patch.Tags != nil {
		input.Tags = *patch.Tags
		input.ReplaceTags = true
	}
	entry, err := s.journal.Update(c.UserContext(), input)
	if err != nil {
		return httpError("update entry", err)
	}
	return c.JSON(fiber.Map{"data": entry})
}

func (s *Server) handleDeleteEntry(c *fiber.Ctx) error {
	if err := s.journal.Delete(c.UserContext(), c.Params("id")); err != nil {
		return httpError("delete entry", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleMoods(c *fiber.Ctx) error {
	moods := s.journal.Moods()
	return c.JSON(fiber.Map{"data": moods, "meta": fiber.Map{"count": len(moods)}})
}

func (s *Server) handleSentiment(c *fiber.Ctx) error {
	var payload sentimentPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	out, err := s.insights.Sentiment(c.UserContext(), payload.Text)
	if err != nil {
		return httpError("sentiment", err)
	}
	return c.JSON(fiber.Map{"data": out})
}

func (s *Server) handleSeries(c *fiber.Ctx) error {
	items, err := s.insights.Series(c.UserContext(), insightsdto.SeriesInput{Limit: c.QueryInt("limit", 0)})
	if err != nil {
		return httpError("series", err)
	}
	return c.JSON(fiber.Map{"data": items, "meta": fiber.Map{"count": len(items)}})
}

func (s *Server) handleThemes(c *fiber.Ctx) error {
	items, err := s.insights.Themes(c.UserContext())
	if err != nil {
		return httpError("themes", err)
	}
	return c.JSON(fiber.Map{"data": items, "meta": fiber.Map{"count": len(items)}})
}

func (s *Server) handlePrompts(c *fiber.Ctx) error {
	items, err := s.insights.Prompts(c.UserContext())
	if err != nil {
		return httpError("prompts", err)
	}
	return c.JSON(fiber.Map{"data": items, "meta": fiber.Map{"count": len(items)}})
}

func (s *Server) handleWeekly(c *fiber.Ctx) error {
	summary, err := s.insights.Weekly(c.UserContext())
	if err != nil {
		return httpError("weekly", err)
	}
	return c.JSON(fiber.Map{"data": summary})
}

func (s *Server) handleAnxiety(c *fiber.Ctx) error {
	out, err := s.insights.Anxiety(c.UserContext())
	if err != nil {
		return httpError("anxiety", err)
	}
	return c.JSON(fiber.Map{"data": out})
}

func (s *Server) handleClarity(c *fiber.Ctx) error {
	out, err := s.insights.Clarity(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError("clarity", err)
	}
	return c.JSON(fiber.Map{"data": out})
}

func (s *Server) handleOverview(c *fiber.Ctx) error {
	out, err := s.insights.Overview(c.UserContext())
	if err != nil {
		return httpError("overview", err)
	}
	return c.JSON(fiber.Map{"data": out})
}

func httpError(op string, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidInput):
		code = fiber.StatusBadRequest
	}
	return fiber.NewError(code, fmt.Sprintf("%s: %v", op, err))
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := err.Error()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
