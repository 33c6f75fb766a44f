package http

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	apierrors "matchday/internal/errors"
	"matchday/internal/exporter"
	api "matchday/pkg/contracts/api/v1"
	"matchday/pkg/contracts/domain"
)

// ExportHandler serves the fixture download endpoints.
type ExportHandler struct {
	service  DashboardReader
	errors   *apierrors.ErrorHandler
	validate *validator.Validate
	logger   *slog.Logger
}

// NewExportHandler creates an export handler.
func NewExportHandler(service DashboardReader, errHandler *apierrors.ErrorHandler, logger *slog.Logger) *ExportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportHandler{
		service:  service,
		errors:   errHandler,
		validate: validator.New(),
		logger:   logger.With(slog.String("handler", "export")),
	}
}

// Routes returns the router for the export endpoints.
func (h *ExportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/matches.csv", h.MatchesCSV)
	r.Get("/matches.xlsx", h.MatchesXLSX)
	return r
}

// MatchesCSV handles GET /export/matches.csv
func (h *ExportHandler) MatchesCSV(w http.ResponseWriter, r *http.Request) {
	matches, ok := h.filteredMatches(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := exporter.WriteCSV(&buf, matches); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="matches.csv"`)
	w.Write(buf.Bytes())
}

// MatchesXLSX handles GET /export/matches.xlsx
func (h *ExportHandler) MatchesXLSX(w http.ResponseWriter, r *http.Request) {
	matches, ok := h.filteredMatches(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := exporter.WriteXLSX(&buf, matches); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="matches.xlsx"`)
	w.Write(buf.Bytes())
}

// filteredMatches parses the common filter parameters and fetches the
// matching fixtures. It writes the error response itself on failure.
func (h *ExportHandler) filteredMatches(w http.ResponseWriter, r *http.Request) ([]domain.Match, bool) {
	q := r.URL.Query()
	req := api.MatchFilterRequest{
		League: q.Get("league"),
		Team:   q.Get("team"),
		DateRangeRequest: api.DateRangeRequest{
			From: q.Get("from"),
			To:   q.Get("to"),
		},
	}
	if err := h.validate.Struct(req); err != nil {
		h.errors.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return nil, false
	}

	resp, err := h.service.Matches(r.Context(), req)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return nil, false
	}
	return resp.Matches, true
}
