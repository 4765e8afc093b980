// Package http exposes the easel core over a stateless REST surface.
//
// Every mutation request carries an explicit project id; the handler
// fetches the persisted document, applies one mutation and persists the
// result. Positional aliases are rejected on this path — remote callers
// address layers by id or name.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/easel-ai/easel"
	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/ports"
)

// Server routes REST calls into the Studio.
type Server struct {
	studio *easel.Studio
	access ports.AccessController
	logger *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithAccessController gates mutations behind an external access check.
func WithAccessController(access ports.AccessController) Option {
	return func(s *Server) {
		s.access = access
	}
}

// NewHandler creates the HTTP handler for the studio.
func NewHandler(studio *easel.Studio, opts ...Option) http.Handler {
	s := &Server{
		studio: studio,
		access: ports.AllowAll{},
		logger: studio.Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/tools", s.listTools)

	r.Route("/projects", func(r chi.Router) {
		r.Post("/", s.createProject)
		r.Get("/", s.listProjects)
		r.Route("/{projectID}", func(r chi.Router) {
			r.Get("/", s.getProject)
			r.Delete("/", s.deleteProject)
			r.Post("/mutations", s.applyMutation)
			r.Get("/evaluate", s.evaluate)
		})
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-Id")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": easel.Version})
}

func (s *Server) listTools(w http.ResponseWriter, r *http.Request) {
	type toolDoc struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		Parameters  map[string]any `json:"parameters"`
		ReadOnly    bool           `json:"read_only"`
	}
	tools := s.studio.Tools()
	out := make([]toolDoc, 0, len(tools))
	for _, t := range tools {
		out = append(out, toolDoc{Name: t.Name, Description: t.Description, Parameters: t.Parameters, ReadOnly: t.ReadOnly})
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateProjectRequest is the body of POST /projects.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var body CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name == "" {
		httpError(w, http.StatusBadRequest, "name is required")
		return
	}

	project, err := s.studio.CreateProject(r.Context(), body.Name)
	if err != nil {
		s.logger.Error("create project failed", "err", err)
		httpError(w, http.StatusInternalServerError, "failed to create project")
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	ids, err := s.studio.Projects(r.Context())
	if err != nil {
		s.logger.Error("list projects failed", "err", err)
		httpError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": ids})
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	if err := s.studio.DeleteProject(r.Context(), projectID); err != nil {
		s.logger.Error("delete project failed", "project_id", projectID, "err", err)
		httpError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MutationRequest is the body of POST /projects/{id}/mutations.
type MutationRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args"`
}

func (s *Server) applyMutation(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	var body MutationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Tool == "" {
		httpError(w, http.StatusBadRequest, "tool is required")
		return
	}

	userID := r.Header.Get("X-User-Id")
	if err := s.access.Authorize(r.Context(), userID, projectID); err != nil {
		httpError(w, http.StatusForbidden, fmt.Sprintf("access denied: %v", err))
		return
	}

	res, err := s.studio.Apply(r.Context(), projectID, body.Tool, body.Args)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			httpError(w, http.StatusNotFound, "project not found")
			return
		}
		s.logger.Error("mutation failed", "project_id", projectID, "tool", body.Tool, "err", err)
		httpError(w, http.StatusInternalServerError, "mutation failed")
		return
	}

	// Structured failures are part of the contract, not transport errors.
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	layerRef := r.URL.Query().Get("layer")
	property := r.URL.Query().Get("property")
	timeStr := r.URL.Query().Get("time")
	if layerRef == "" || property == "" || timeStr == "" {
		httpError(w, http.StatusBadRequest, "layer, property and time query parameters are required")
		return
	}
	at, err := strconv.ParseFloat(timeStr, 64)
	if err != nil {
		httpError(w, http.StatusBadRequest, "time must be a number")
		return
	}

	value, err := s.studio.Evaluate(project, layerRef, property, at)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"layer":    layerRef,
		"property": property,
		"time":     at,
		"value":    value,
	})
}

func (s *Server) loadProject(w http.ResponseWriter, r *http.Request) (*domain.Project, bool) {
	projectID := chi.URLParam(r, "projectID")
	project, err := s.studio.Project(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			httpError(w, http.StatusNotFound, "project not found")
			return nil, false
		}
		s.logger.Error("load project failed", "project_id", projectID, "err", err)
		httpError(w, http.StatusInternalServerError, "failed to load project")
		return nil, false
	}
	return project, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
