package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/dewiktionary/internal/domain"
	"github.com/heartmarshall/dewiktionary/internal/service/article"
	"github.com/heartmarshall/dewiktionary/internal/wikitext"
	"github.com/heartmarshall/dewiktionary/internal/wiktionary"
)

// articleService defines the minimal interface needed by PageHandler.
type articleService interface {
	Parse(ctx context.Context, in article.ParseInput) (*wiktionary.Output, error)
	Ingest(ctx context.Context, in article.ParseInput) (*domain.Page, error)
	Get(ctx context.Context, title string) (*domain.Page, error)
	List(ctx context.Context, filter domain.PageFilter) ([]string, error)
	Stats(ctx context.Context) ([]domain.WarningStat, error)
}

// PageHandler serves the parse and page endpoints.
type PageHandler struct {
	svc     articleService
	log     *slog.Logger
	maxBody int64
}

// NewPageHandler creates a PageHandler. Request bodies above maxBody bytes
// are rejected with 413.
func NewPageHandler(svc articleService, logger *slog.Logger, maxBody int64) *PageHandler {
	return &PageHandler{svc: svc, log: logger.With("handler", "pages"), maxBody: maxBody}
}

type pageRequest struct {
	Title    string          `json:"title"`
	WikiText string          `json:"wiki_text"`
	Nodes    []wikitext.Node `json:"nodes,omitempty"`
}

type pageResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	RunID         string            `json:"run_id"`
	ParsedAt      time.Time         `json:"parsed_at"`
	LanguageCount int               `json:"language_count"`
	PosCount      int               `json:"pos_count"`
	WarningCount  int               `json:"warning_count"`
	Output        wiktionary.Output `json:"output"`
}

type listResponse struct {
	Titles []string `json:"titles"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
}

type warningStat struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type statsResponse struct {
	Warnings []warningStat `json:"warnings"`
}

// Parse handles POST /api/parse.
func (h *PageHandler) Parse(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}
	out, err := h.svc.Parse(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Ingest handles POST /api/pages.
func (h *PageHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}
	page, err := h.svc.Ingest(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("Location", "/api/pages/"+url.PathEscape(page.TitleNormalized))
	writeJSON(w, http.StatusCreated, toPageResponse(page))
}

// Get handles GET /api/pages/{title}.
func (h *PageHandler) Get(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(title)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid title")
			return
		}
		title = unescaped
	}

	page, err := h.svc.Get(r.Context(), title)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page))
}

// List handles GET /api/pages.
func (h *PageHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.PageFilter{Language: q.Get("language"), Pos: q.Get("pos")}

	var err error
	if filter.Limit, err = intParam(q, "limit"); err != nil {
		writeError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	if filter.Offset, err = intParam(q, "offset"); err != nil {
		writeError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	titles, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	filter = filter.Normalize()
	writeJSON(w, http.StatusOK, listResponse{Titles: titles, Limit: filter.Limit, Offset: filter.Offset})
}

// WarningStats handles GET /api/stats/warnings.
func (h *PageHandler) WarningStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := statsResponse{Warnings: make([]warningStat, 0, len(stats))}
	for _, s := range stats {
		resp.Warnings = append(resp.Warnings, warningStat{Message: s.Message, Count: s.Count})
	}
	writeJSON(w, http.StatusOK, resp)
}

// decode reads a page request, writing the error response itself when the
// body cannot be used.
func (h *PageHandler) decode(w http.ResponseWriter, r *http.Request) (article.ParseInput, bool) {
	body := http.MaxBytesReader(w, r.Body, h.maxBody)
	var req pageRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusBadRequest, "request body is empty")
		default:
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return article.ParseInput{}, false
	}
	return article.ParseInput{Title: req.Title, WikiText: req.WikiText, Nodes: req.Nodes}, true
}

func intParam(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func toPageResponse(p *domain.Page) pageResponse {
	return pageResponse{
		ID:            p.ID.String(),
		Title:         p.Title,
		RunID:         p.RunID,
		ParsedAt:      p.ParsedAt,
		LanguageCount: p.LanguageCount,
		PosCount:      p.PosCount,
		WarningCount:  p.WarningCount,
		Output:        p.Output(),
	}
}
