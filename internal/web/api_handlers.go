package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/evcraddock/client-tracker/internal/client"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	apiJSON(w, map[string]string{"error": msg}, code)
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiFail maps err to a status and writes it. 5xx details stay in the log.
func apiFail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("api request failed")
		msg = "internal server error"
	}
	apiError(w, msg, status)
}

// apiListClients handles GET /api/clients?q=&today=1.
func (s *Server) apiListClients(w http.ResponseWriter, r *http.Request) {
	today := r.URL.Query().Get("today")
	q := client.ListQuery{
		Search:    r.URL.Query().Get("q"),
		TodayOnly: today == "1" || today == "true",
	}

	result, err := s.clients.List(r.Context(), q)
	if err != nil {
		apiFail(w, r, err)
		return
	}
	if result.Clients == nil {
		result.Clients = []*client.Client{}
	}

	apiJSON(w, result, http.StatusOK)
}

// apiCreateClient handles POST /api/clients.
func (s *Server) apiCreateClient(w http.ResponseWriter, r *http.Request) {
	var in client.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	c, err := s.clients.Create(r.Context(), in)
	if err != nil {
		apiFail(w, r, err)
		return
	}

	apiJSON(w, c, http.StatusCreated)
}

// apiGetClient handles GET /api/clients/{id}.
func (s *Server) apiGetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		apiError(w, "invalid client ID", http.StatusBadRequest)
		return
	}

	c, err := s.clients.Get(r.Context(), id)
	if err != nil {
		apiFail(w, r, err)
		return
	}

	apiJSON(w, c, http.StatusOK)
}

// apiUpdateClient handles PUT /api/clients/{id}. A blank next_follow keeps
// the stored date.
func (s *Server) apiUpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		apiError(w, "invalid client ID", http.StatusBadRequest)
		return
	}

	var in client.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	c, err := s.clients.Update(r.Context(), id, in)
	if err != nil {
		apiFail(w, r, err)
		return
	}

	apiJSON(w, c, http.StatusOK)
}

// apiDeleteClient handles DELETE /api/clients/{id}.
func (s *Server) apiDeleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		apiError(w, "invalid client ID", http.StatusBadRequest)
		return
	}

	if err := s.clients.Delete(r.Context(), id); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			apiError(w, "client not found", http.StatusNotFound)
			return
		}
		apiFail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
