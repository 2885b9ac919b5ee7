package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/chronicle-engine/internal/logger"
	"github.com/jwebster45206/chronicle-engine/internal/middleware"
	"github.com/jwebster45206/chronicle-engine/internal/savefile"
	"github.com/jwebster45206/chronicle-engine/internal/storage"
	"github.com/jwebster45206/chronicle-engine/pkg/chronicle"
	"github.com/jwebster45206/chronicle-engine/pkg/textfilter"
	"github.com/jwebster45206/chronicle-engine/pkg/timeline"
)

// ChronicleArchive keeps rendered chronicles.
type ChronicleArchive interface {
	Save(ctx context.Context, c *storage.ArchivedChronicle) error
	Recent(ctx context.Context, sessionID string, limit int) ([]storage.ArchivedChronicle, error)
	Get(ctx context.Context, id int64) (*storage.ArchivedChronicle, error)
}

// TimelineOptions configures a TimelineHandler.
type TimelineOptions struct {
	DefaultEmpireName string
	MaxUploadBytes    int64
	// Now stamps export filenames; nil uses time.Now.
	Now func() time.Time
}

type TimelineHandler struct {
	storage  storage.Storage
	archive  ChronicleArchive
	registry *chronicle.Registry
	names    *textfilter.NameFilter
	opts     TimelineOptions
	logger   *slog.Logger
}

// NewTimelineHandler serves the timeline session API. A nil archive turns
// archiving off.
func NewTimelineHandler(logger *slog.Logger, store storage.Storage, archive ChronicleArchive, registry *chronicle.Registry, opts TimelineOptions) *TimelineHandler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DefaultEmpireName == "" {
		opts.DefaultEmpireName = chronicle.DefaultEmpireName
	}
	return &TimelineHandler{
		storage:  store,
		archive:  archive,
		registry: registry,
		names:    textfilter.NewNameFilter(0),
		opts:     opts,
		logger:   logger,
	}
}

// CreateTimelineResponse is returned after a save is uploaded.
type CreateTimelineResponse struct {
	ID         uuid.UUID         `json:"id"`
	SourceName string            `json:"source_name,omitempty"`
	EventCount int               `json:"event_count"`
	Events     timeline.Sequence `json:"events"`
}

// RequirementsResponse lists what manual mode still needs.
type RequirementsResponse struct {
	Requirements   []chronicle.Requirement `json:"requirements"`
	Overrides      chronicle.Overrides     `json:"overrides"`
	CompletedCount int                     `json:"completed_count"`
	Ready          bool                    `json:"ready"`
}

// ChronicleRequest selects how a chronicle is rendered.
type ChronicleRequest struct {
	EmpireName         string  `json:"empire_name"`
	IncludeYearMarkers bool    `json:"include_year_markers"`
	Mode               string  `json:"mode"`
	Seed               *uint64 `json:"seed,omitempty"`
}

// ChronicleResponse is a rendered chronicle and its statistics.
type ChronicleResponse struct {
	ArchiveID int64            `json:"archive_id,omitempty"`
	Filename  string           `json:"filename"`
	Text      string           `json:"text"`
	Lines     []chronicle.Line `json:"lines"`
	Filtered  int              `json:"filtered"`
	Mode      chronicle.Mode   `json:"mode"`
	Report    chronicle.Report `json:"report"`
	Missing   []string         `json:"missing,omitempty"`
}

// ServeHTTP handles HTTP requests for timeline sessions
// Routes:
// POST   /v1/timelines                   - Upload a save and parse it
// GET    /v1/timelines/{id}              - Read the parsed events
// DELETE /v1/timelines/{id}              - Delete the session
// GET    /v1/timelines/{id}/requirements - Manual mode input list
// PUT    /v1/timelines/{id}/overrides    - Merge user answers
// POST   /v1/timelines/{id}/chronicle    - Render and archive a chronicle
// GET    /v1/timelines/{id}/timeline     - Timeline view entries
// GET    /v1/timelines/{id}/report       - Generation statistics
func (h *TimelineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := middleware.FromContext(r.Context(), h.logger)

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/timelines"), "/")
	if path == "" {
		if r.Method != http.MethodPost {
			writeError(w, log, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
			return
		}
		h.handleCreate(w, r, log)
		return
	}

	idStr, action, _ := strings.Cut(path, "/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Warn("Invalid timeline ID", "id", idStr, "error", err)
		writeError(w, log, http.StatusBadRequest, "Invalid timeline ID format")
		return
	}
	log = logger.WithSession(log, id.String())

	route := r.Method + " " + action
	switch route {
	case "GET ":
		h.handleRead(w, r, log, id)
	case "DELETE ":
		h.handleDelete(w, r, log, id)
	case "GET requirements":
		h.handleRequirements(w, r, log, id)
	case "PUT overrides":
		h.handleOverrides(w, r, log, id)
	case "POST chronicle":
		h.handleChronicle(w, r, log, id)
	case "GET timeline":
		h.handleTimeline(w, r, log, id)
	case "GET report":
		h.handleReport(w, r, log, id)
	default:
		switch action {
		case "", "requirements", "overrides", "chronicle", "timeline", "report":
			log.Warn("Method not allowed for timeline endpoint", "method", r.Method, "action", action)
			writeError(w, log, http.StatusMethodNotAllowed, "Method not allowed")
		default:
			writeError(w, log, http.StatusNotFound, "Unknown timeline endpoint")
		}
	}
}

func (h *TimelineHandler) handleCreate(w http.ResponseWriter, r *http.Request, log *slog.Logger) {
	text, err := savefile.ReadLimited(r.Body, h.opts.MaxUploadBytes)
	if err != nil {
		if errors.Is(err, savefile.ErrTooLarge) {
			writeError(w, log, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		log.Warn("Failed to read upload", "error", err)
		writeError(w, log, http.StatusBadRequest, "Failed to read save: "+err.Error())
		return
	}

	seq, err := timeline.NewParser(log).Parse(text)
	if err != nil {
		if errors.Is(err, timeline.ErrNotFound) || errors.Is(err, timeline.ErrMalformed) {
			writeError(w, log, http.StatusUnprocessableEntity, err.Error())
			return
		}
		logger.WithError(log, err).Error("Unexpected parse failure")
		writeError(w, log, http.StatusInternalServerError, "Failed to parse save")
		return
	}

	session := storage.NewSession(r.URL.Query().Get("name"), seq)
	if err := h.storage.SaveSession(r.Context(), session); err != nil {
		logger.WithError(log, err).Error("Failed to save session")
		writeError(w, log, http.StatusInternalServerError, "Failed to save timeline")
		return
	}

	logger.WithSession(log, session.ID.String()).Info("Timeline session created", "events", len(seq))
	writeJSON(w, log, http.StatusCreated, CreateTimelineResponse{
		ID:         session.ID,
		SourceName: session.SourceName,
		EventCount: len(seq),
		Events:     seq,
	})
}

// loadSession writes the error response itself and returns nil when the
// session cannot be used.
func (h *TimelineHandler) loadSession(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) *storage.Session {
	session, err := h.storage.LoadSession(r.Context(), id)
	if err != nil {
		logger.WithError(log, err).Error("Failed to load session")
		writeError(w, log, http.StatusInternalServerError, "Failed to load timeline")
		return nil
	}
	if session == nil {
		writeError(w, log, http.StatusNotFound, "Timeline not found")
		return nil
	}
	return session
}

func (h *TimelineHandler) loadOverrides(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) (chronicle.Overrides, bool) {
	overrides, err := h.storage.LoadOverrides(r.Context(), id)
	if err != nil {
		logger.WithError(log, err).Error("Failed to load overrides")
		writeError(w, log, http.StatusInternalServerError, "Failed to load overrides")
		return nil, false
	}
	return overrides, true
}

func (h *TimelineHandler) handleRead(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	session := h.loadSession(w, r, log, id)
	if session == nil {
		return
	}
	writeJSON(w, log, http.StatusOK, CreateTimelineResponse{
		ID:         session.ID,
		SourceName: session.SourceName,
		EventCount: len(session.Events),
		Events:     session.Events,
	})
}

func (h *TimelineHandler) handleDelete(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	if err := h.storage.DeleteSession(r.Context(), id); err != nil {
		logger.WithError(log, err).Error("Failed to delete session")
		writeError(w, log, http.StatusInternalServerError, "Failed to delete timeline")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TimelineHandler) handleRequirements(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	session := h.loadSession(w, r, log, id)
	if session == nil {
		return
	}
	overrides, ok := h.loadOverrides(w, r, log, id)
	if !ok {
		return
	}

	reqs := chronicle.AnalyzeRequirements(session.Events, h.registry)
	writeJSON(w, log, http.StatusOK, RequirementsResponse{
		Requirements:   reqs,
		Overrides:      overrides,
		CompletedCount: chronicle.CompletedCount(overrides),
		Ready:          chronicle.Ready(reqs, overrides),
	})
}

func (h *TimelineHandler) handleOverrides(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, log, http.StatusBadRequest, "Request body must be a JSON object of strings")
		return
	}
	if session := h.loadSession(w, r, log, id); session == nil {
		return
	}

	// blank answers stay blank so the store deletes them
	for k, v := range updates {
		updates[k] = h.names.Clean(v)
	}
	if err := h.storage.UpdateOverrides(r.Context(), id, updates); err != nil {
		logger.WithError(log, err).Error("Failed to update overrides")
		writeError(w, log, http.StatusInternalServerError, "Failed to update overrides")
		return
	}
	log.Info("Overrides updated", "keys", len(updates))
	h.handleRequirements(w, r, log, id)
}

func (h *TimelineHandler) handleChronicle(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	var req ChronicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, log, http.StatusBadRequest, "Invalid chronicle request body")
		return
	}
	mode, err := chronicle.ParseMode(req.Mode)
	if err != nil {
		writeError(w, log, http.StatusBadRequest, err.Error())
		return
	}

	session := h.loadSession(w, r, log, id)
	if session == nil {
		return
	}
	overrides, ok := h.loadOverrides(w, r, log, id)
	if !ok {
		return
	}

	empire := h.names.Clean(req.EmpireName)
	if empire == "" {
		empire = h.opts.DefaultEmpireName
	}
	opts := chronicle.Options{
		EmpireName:         empire,
		IncludeYearMarkers: req.IncludeYearMarkers,
		Overrides:          overrides,
		Mode:               mode,
	}
	if req.Seed != nil {
		opts.Rand = chronicle.NewRand(*req.Seed)
	}

	res := chronicle.Render(session.Events, h.registry, opts)
	now := h.opts.Now()
	resp := ChronicleResponse{
		Filename: chronicle.ExportFilename(now),
		Text:     res.Text,
		Lines:    res.Lines,
		Filtered: res.Filtered,
		Mode:     res.Mode,
		Report:   chronicle.BuildReport(session.Events, h.registry, req.IncludeYearMarkers),
	}
	if mode == chronicle.ModeManual {
		for _, m := range chronicle.Missing(chronicle.AnalyzeRequirements(session.Events, h.registry), overrides) {
			resp.Missing = append(resp.Missing, m.Key)
		}
	}

	if h.archive != nil {
		entry := &storage.ArchivedChronicle{
			SessionID:  id.String(),
			EmpireName: opts.PlayerEmpireName(),
			Mode:       string(res.Mode),
			EventCount: len(res.Lines),
			Filtered:   res.Filtered,
			Filename:   resp.Filename,
			Text:       res.Text,
			CreatedAt:  now,
		}
		if err := h.archive.Save(r.Context(), entry); err != nil {
			// the chronicle is still returned
			logger.WithError(log, err).Warn("Failed to archive chronicle")
		} else {
			resp.ArchiveID = entry.ID
		}
	}

	log.Info("Chronicle rendered", "mode", res.Mode, "lines", len(res.Lines), "filtered", res.Filtered)
	writeJSON(w, log, http.StatusOK, resp)
}

func (h *TimelineHandler) handleTimeline(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	session := h.loadSession(w, r, log, id)
	if session == nil {
		return
	}
	overrides, ok := h.loadOverrides(w, r, log, id)
	if !ok {
		return
	}

	q := r.URL.Query()
	mode, err := chronicle.ParseMode(q.Get("mode"))
	if err != nil {
		writeError(w, log, http.StatusBadRequest, err.Error())
		return
	}
	opts := chronicle.Options{
		EmpireName: h.opts.DefaultEmpireName,
		Overrides:  overrides,
		Mode:       mode,
	}
	if name := h.names.Clean(q.Get("empire_name")); name != "" {
		opts.EmpireName = name
	}
	if s := q.Get("seed"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			writeError(w, log, http.StatusBadRequest, "seed must be an unsigned integer")
			return
		}
		opts.Rand = chronicle.NewRand(seed)
	}

	writeJSON(w, log, http.StatusOK, chronicle.BuildTimeline(session.Events, h.registry, opts))
}

func (h *TimelineHandler) handleReport(w http.ResponseWriter, r *http.Request, log *slog.Logger, id uuid.UUID) {
	session := h.loadSession(w, r, log, id)
	if session == nil {
		return
	}
	include, _ := strconv.ParseBool(r.URL.Query().Get("include_year_markers"))
	writeJSON(w, log, http.StatusOK, chronicle.BuildReport(session.Events, h.registry, include))
}
