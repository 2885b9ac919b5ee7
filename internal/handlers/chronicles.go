package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jwebster45206/chronicle-engine/internal/logger"
	"github.com/jwebster45206/chronicle-engine/internal/middleware"
	"github.com/jwebster45206/chronicle-engine/internal/storage"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 200
)

type ChronicleHandler struct {
	archive ChronicleArchive
	logger  *slog.Logger
}

func NewChronicleHandler(logger *slog.Logger, archive ChronicleArchive) *ChronicleHandler {
	return &ChronicleHandler{
		archive: archive,
		logger:  logger,
	}
}

// ServeHTTP handles HTTP requests for archived chronicles
// Routes:
// GET /v1/chronicles       - List recent chronicles (?session_id=&limit=)
// GET /v1/chronicles/{id}  - Download one chronicle as text
func (h *ChronicleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := middleware.FromContext(r.Context(), h.logger)

	if r.Method != http.MethodGet {
		writeError(w, log, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET")
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/chronicles"), "/")
	if path == "" {
		h.handleList(w, r, log)
		return
	}

	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, log, http.StatusBadRequest, "Invalid chronicle ID")
		return
	}
	h.handleDownload(w, r, log, id)
}

func (h *ChronicleHandler) handleList(w http.ResponseWriter, r *http.Request, log *slog.Logger) {
	q := r.URL.Query()
	limit := defaultRecentLimit
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, log, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxRecentLimit)
	}

	rows, err := h.archive.Recent(r.Context(), q.Get("session_id"), limit)
	if err != nil {
		logger.WithError(log, err).Error("Failed to list chronicles")
		writeError(w, log, http.StatusInternalServerError, "Failed to list chronicles")
		return
	}
	if rows == nil {
		rows = []storage.ArchivedChronicle{}
	}
	writeJSON(w, log, http.StatusOK, rows)
}

func (h *ChronicleHandler) handleDownload(w http.ResponseWriter, r *http.Request, log *slog.Logger, id int64) {
	c, err := h.archive.Get(r.Context(), id)
	if err != nil {
		logger.WithError(log, err).Error("Failed to load chronicle", "chronicle_id", id)
		writeError(w, log, http.StatusInternalServerError, "Failed to load chronicle")
		return
	}
	if c == nil {
		writeError(w, log, http.StatusNotFound, "Chronicle not found")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(c.Filename)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(c.Text)); err != nil {
		log.Error("Failed to write chronicle", "error", err, "chronicle_id", id)
	}
}
