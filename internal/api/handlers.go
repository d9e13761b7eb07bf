package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pokedex/pkg/buildinfo"
	perrors "github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/pokedex"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleSpecies(w http.ResponseWriter, r *http.Request) {
	s.handleLookup(w, r, s.lookup.GetSpecies)
}

func (s *Server) handleTranslatedSpecies(w http.ResponseWriter, r *http.Request) {
	s.handleLookup(w, r, s.lookup.GetTranslatedSpecies)
}

type lookupFunc func(ctx context.Context, name string) (*pokedex.Summary, error)

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request, lookup lookupFunc) {
	name, err := speciesParam(r)
	if err != nil {
		s.respondError(w, r, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "species name is not a valid path segment"))
		return
	}
	if err := perrors.ValidateSpeciesName(name); err != nil {
		s.respondError(w, r, err)
		return
	}

	summary, err := lookup(r.Context(), name)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, summary)
}

// speciesParam returns the decoded {name} segment. chi matches against
// r.URL.RawPath when it is set, so only then is the parameter still escaped.
// StripSlashes reroutes a trailing-slash request on the decoded r.URL.Path.
func speciesParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" || strings.HasSuffix(r.URL.Path, "/") {
		return name, nil
	}
	return url.PathUnescape(name)
}

// respondError logs err and writes its client-facing form.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapError(err)

	logFn := s.logger.Warn
	if status >= http.StatusInternalServerError {
		logFn = s.logger.Error
	}
	logFn("request failed",
		"path", r.URL.Path,
		"status", status,
		"code", perrors.GetCode(err),
		"request_id", middleware.GetReqID(r.Context()),
		"err", err,
	)

	s.respondJSON(w, r, status, errorResponse{Message: message})
}

func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "path", r.URL.Path, "err", err)
	}
}
