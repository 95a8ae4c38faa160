package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/atvirokodosprendimai/showsapi/internal/core/domain"
	"github.com/atvirokodosprendimai/showsapi/internal/core/usecase"
)

type ctxKey string

const (
	apiActorCtxKey  ctxKey = "api_actor"
	maxJSONBodySize        = 1 << 20
	showsPath              = "/api/v1/netflix-shows"
)

const (
	msgCreated          = "NetflixShows created successfully"
	msgRetrieved        = "NetflixShows retrieved successfully"
	msgUpdated          = "NetflixShows updated successfully"
	msgDeleted          = "NetflixShows deleted successfully"
	msgNoneFound        = "No NetflixShows found"
	msgNotFound         = "NetflixShows not found"
	msgIDNull           = "ID must not be null"
	msgIDInvalid        = "ID must be a positive integer"
	msgBodyNull         = "NetflixShowsDTO must not be null"
	msgValidationFailed = "Validation failed. Please check your input."
	msgAuditRetrieved   = "Audit events retrieved successfully"
	msgUnauthorized     = "unauthorized"
)

// Handler serves the shows REST API. Routes under /api/v1 require an API key
// only when an AuthService is configured.
type Handler struct {
	shows      *usecase.ShowService
	audit      *usecase.AuditService
	auth       *usecase.AuthService
	log        *slog.Logger
	bodySchema *jsonschema.Schema
}

func NewHandler(shows *usecase.ShowService, audit *usecase.AuditService, auth *usecase.AuthService, log *slog.Logger) (*Handler, error) {
	if log == nil {
		log = slog.Default()
	}
	sch, err := compileShowBodySchema()
	if err != nil {
		return nil, fmt.Errorf("compile show body schema: %w", err)
	}
	return &Handler{shows: shows, audit: audit, auth: auth, log: log, bodySchema: sch}, nil
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.healthz)
	r.Get("/openapi.json", h.openapi)

	r.Group(func(pr chi.Router) {
		if h.auth != nil {
			pr.Use(h.requireAPIKey)
		}
		pr.Post(showsPath, h.createShow)
		pr.Get(showsPath, h.listShows)
		pr.Get(showsPath+"/{id}", h.getShow)
		pr.Put(showsPath+"/{id}", h.updateShow)
		pr.Delete(showsPath+"/{id}", h.deleteShow)
		pr.Get(showsPath+"/{id}/audit", h.listAudit)
	})

	return r
}

// response is the envelope every API route answers with.
type response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) createShow(w http.ResponseWriter, r *http.Request) {
	in, ok := h.readShowInput(w, r)
	if !ok {
		return
	}

	show, err := h.shows.Create(r.Context(), in, mutationMetadata(r))
	if err != nil {
		h.handleError(w, r, err, msgNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, msgCreated, show)
}

func (h *Handler) listShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.shows.List(r.Context())
	if err != nil {
		h.handleError(w, r, err, msgNoneFound)
		return
	}
	writeJSON(w, http.StatusOK, msgRetrieved, shows)
}

func (h *Handler) getShow(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	show, err := h.shows.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, msgNotFound)
		return
	}
	writeJSON(w, http.StatusOK, msgRetrieved, show)
}

func (h *Handler) updateShow(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	in, ok := h.readShowInput(w, r)
	if !ok {
		return
	}

	show, err := h.shows.Update(r.Context(), id, in, mutationMetadata(r))
	if err != nil {
		h.handleError(w, r, err, msgNotFound)
		return
	}
	writeJSON(w, http.StatusOK, msgUpdated, show)
}

func (h *Handler) deleteShow(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := h.shows.Delete(r.Context(), id, mutationMetadata(r))
	if err != nil {
		h.handleError(w, r, err, msgNotFound)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, msgNotFound, nil)
		return
	}
	writeJSON(w, http.StatusOK, msgDeleted, nil)
}

func (h *Handler) listAudit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	filter := domain.AuditFilter{ShowID: id}
	q := r.URL.Query()
	if raw := q.Get("after"); raw != "" {
		after, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, "after must be integer", nil)
			return
		}
		filter.AfterID = after
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, "limit must be integer", nil)
			return
		}
		filter.Limit = limit
	}

	events, err := h.audit.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err, msgNotFound)
		return
	}
	writeJSON(w, http.StatusOK, msgAuditRetrieved, events)
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"ok":true}` + "\n"))
}

func (h *Handler) openapi(w http.ResponseWriter, _ *http.Request) {
	data, err := json.Marshal(openapiSpec())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append(data, '\n'))
}

// readShowInput reads the body, rejects a missing or null document, checks
// the JSON shape and decodes it. It writes the 400 itself on failure.
func (h *Handler) readShowInput(w http.ResponseWriter, r *http.Request) (*domain.ShowInput, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return nil, false
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		writeJSON(w, http.StatusBadRequest, msgBodyNull, nil)
		return nil, false
	}

	if err := checkShape(h.bodySchema, body); err != nil {
		var se *shapeError
		if errors.As(err, &se) {
			writeJSON(w, http.StatusBadRequest, se.Error(), se.Problems)
			return nil, false
		}
		writeJSON(w, http.StatusBadRequest, err.Error(), nil)
		return nil, false
	}

	// Unknown properties were already rejected by the schema.
	var in domain.ShowInput
	if err := json.Unmarshal(body, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return nil, false
	}
	return &in, true
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	var vErr *usecase.ValidationFailedError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, msgValidationFailed, vErr.Errors)
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundMsg, nil)
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, err.Error(), nil)
	default:
		h.log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, err.Error(), nil)
	}
}

func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get("X-API-Key"))
		if token == "" {
			auth := strings.TrimSpace(r.Header.Get("Authorization"))
			if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
				token = strings.TrimSpace(auth[7:])
			}
		}

		apiKey, err := h.auth.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthorized) {
				writeJSON(w, http.StatusUnauthorized, msgUnauthorized, nil)
				return
			}
			h.log.ErrorContext(r.Context(), "authenticate api key", "error", err)
			writeJSON(w, http.StatusInternalServerError, "internal server error", nil)
			return
		}

		ctx := context.WithValue(r.Context(), apiActorCtxKey, apiKey.Name)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		level := slog.LevelInfo
		if ww.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		h.log.Log(r.Context(), level, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	if raw == "" || raw == "null" {
		writeJSON(w, http.StatusBadRequest, msgIDNull, nil)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, msgIDInvalid, nil)
		return 0, false
	}
	return id, true
}

func mutationMetadata(r *http.Request) domain.MutationMetadata {
	return domain.MutationMetadata{
		Actor:      actorFromContext(r.Context()),
		RequestID:  RequestIDFromContext(r.Context()),
		OccurredAt: time.Now().UTC(),
	}
}

func actorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(apiActorCtxKey).(string)
	if actor == "" {
		return "api"
	}
	return actor
}

func writeJSON(w http.ResponseWriter, status int, message string, data any) {
	body, err := json.Marshal(response{Status: status, Message: message, Data: data})
	if err != nil {
		slog.Error("encode json response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Error("write response", "error", err)
	}
}
