package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "matchday/internal/errors"
	api "matchday/pkg/contracts/api/v1"
)

// DashboardHandler serves the stats and dataset endpoints.
type DashboardHandler struct {
	service  DashboardService
	errors   *apierrors.ErrorHandler
	validate *validator.Validate
	logger   *slog.Logger
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(service DashboardService, errHandler *apierrors.ErrorHandler, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{
		service:  service,
		errors:   errHandler,
		validate: validator.New(),
		logger:   logger.With(slog.String("handler", "dashboard")),
	}
}

// Routes returns the router for the dashboard endpoints.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/leagues", h.Leagues)
	r.Get("/teams", h.Teams)
	r.Get("/matches", h.Matches)
	r.Get("/dashboard", h.Dashboard)

	r.Route("/stats", func(r chi.Router) {
		r.Get("/summary", h.Summary)
		r.Get("/head-to-head", h.HeadToHead)
		r.Get("/top-scorers", h.TopScorers)
	})

	r.Route("/dataset", func(r chi.Router) {
		r.Get("/status", h.DatasetStatus)
		r.Post("/reload", h.DatasetReload)
	})

	return r
}

// Leagues handles GET /leagues
func (h *DashboardHandler) Leagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := h.service.Leagues(r.Context())
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, api.LeaguesResponse{Leagues: leagues})
}

// Teams handles GET /teams?league=
func (h *DashboardHandler) Teams(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")

	teams, err := h.service.Teams(r.Context(), league)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, api.TeamsResponse{League: league, Teams: teams})
}

// Matches handles GET /matches?league=&team=&from=&to=
func (h *DashboardHandler) Matches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := api.MatchFilterRequest{
		League:           q.Get("league"),
		Team:             q.Get("team"),
		DateRangeRequest: dateRange(r),
	}
	if err := h.validate.Struct(req); err != nil {
		h.errors.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	resp, err := h.service.Matches(r.Context(), req)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// Summary handles GET /stats/summary?team=&league=&from=&to=
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := api.TeamSummaryRequest{
		League:           q.Get("league"),
		Team:             q.Get("team"),
		DateRangeRequest: dateRange(r),
	}
	if err := h.validate.Struct(req); err != nil {
		h.errors.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	summary, err := h.service.Summary(r.Context(), req)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, summary)
}

// HeadToHead handles GET /stats/head-to-head?team1=&team2=&league=&from=&to=
func (h *DashboardHandler) HeadToHead(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := api.HeadToHeadRequest{
		League:           q.Get("league"),
		Team1:            q.Get("team1"),
		Team2:            q.Get("team2"),
		DateRangeRequest: dateRange(r),
	}
	if err := h.validate.Struct(req); err != nil {
		h.errors.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	resp, err := h.service.HeadToHead(r.Context(), req)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// TopScorers handles GET /stats/top-scorers?league=&limit=&from=&to=
func (h *DashboardHandler) TopScorers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.errors.HandleError(w, r, apierrors.ErrValidation("limit", "must be an integer"))
			return
		}
		limit = parsed
	}

	req := api.TopScorersRequest{
		League:           q.Get("league"),
		Limit:            limit,
		DateRangeRequest: dateRange(r),
	}
	if err := h.validate.Struct(req); err != nil {
		h.errors.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	resp, err := h.service.TopScorers(r.Context(), req)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// Dashboard handles GET /dashboard?league=&team1=&team2=&from=&to=
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := api.DashboardRequest{
		League:           q.Get("league"),
		Team1:            q.Get("team1"),
		Team2:            q.Get("team2"),
		DateRangeRequest: dateRange(r),
	}
	if err := h.validate.Struct(req); err != nil {
		h.errors.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	resp, err := h.service.Dashboard(r.Context(), req)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// DatasetStatus handles GET /dataset/status
func (h *DashboardHandler) DatasetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status(r.Context())
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, status)
}

// DatasetReload handles POST /dataset/reload
func (h *DashboardHandler) DatasetReload(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Reload(r.Context())
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, snapshot)
}

func dateRange(r *http.Request) api.DateRangeRequest {
	q := r.URL.Query()
	return api.DateRangeRequest{
		From: q.Get("from"),
		To:   q.Get("to"),
	}
}
