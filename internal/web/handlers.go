package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/evcraddock/client-tracker/internal/client"
)

type formData struct {
	Title  string
	Action string
	ID     int64
	Input  client.Input
	Error  string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/list", http.StatusFound)
}

// handleList renders the search/filter view. ?q= searches the text
// fields, ?today=1 keeps only clients due today.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := client.ListQuery{
		Search:    r.URL.Query().Get("q"),
		TodayOnly: r.URL.Query().Get("today") == "1",
	}

	result, err := s.clients.List(r.Context(), q)
	if err != nil {
		s.serverError(w, r, "listing clients", err)
		return
	}

	s.render(w, r, http.StatusOK, "list.html", result)
}

func (s *Server) handleAddForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "form.html", formData{Title: "新增客戶", Action: "/add"})
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	in := inputFromForm(r)
	if _, err := s.clients.Create(r.Context(), in); err != nil {
		s.formError(w, r, formData{Title: "新增客戶", Action: "/add", Input: in}, err)
		return
	}

	http.Redirect(w, r, "/list", http.StatusFound)
}

func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	c, err := s.clients.Get(r.Context(), id)
	if errors.Is(err, client.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, "loading client", err)
		return
	}

	s.render(w, r, http.StatusOK, "form.html", formData{
		Title:  "編輯客戶",
		Action: fmt.Sprintf("/edit/%d", id),
		ID:     id,
		Input: client.Input{
			Name:            c.Name,
			HouseAddress:    c.HouseAddress,
			RegisterAddress: c.RegisterAddress,
			NextFollow:      c.NextFollow.String(),
			Notes:           c.Notes,
		},
	})
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	in := inputFromForm(r)
	if _, err := s.clients.Update(r.Context(), id, in); err != nil {
		s.formError(w, r, formData{
			Title:  "編輯客戶",
			Action: fmt.Sprintf("/edit/%d", id),
			ID:     id,
			Input:  in,
		}, err)
		return
	}

	http.Redirect(w, r, "/list", http.StatusFound)
}

// handleDelete removes a client and returns to the list. A missing id is
// not an error for the user.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.Redirect(w, r, "/list", http.StatusFound)
		return
	}

	err := s.clients.Delete(r.Context(), id)
	if errors.Is(err, client.ErrNotFound) {
		zerolog.Ctx(r.Context()).Warn().Int64("id", id).Msg("delete of missing client ignored")
	} else if err != nil {
		s.serverError(w, r, "deleting client", err)
		return
	}

	http.Redirect(w, r, "/list", http.StatusFound)
}

// formError re-renders the form with a message for validation errors and
// falls back to a plain error response otherwise.
func (s *Server) formError(w http.ResponseWriter, r *http.Request, data formData, err error) {
	status := statusFromError(err)
	switch status {
	case http.StatusBadRequest:
		data.Error = validationMessage(err)
		s.render(w, r, status, "form.html", data)
	case http.StatusNotFound:
		http.NotFound(w, r)
	default:
		s.serverError(w, r, "saving client", err)
	}
}

// render executes a page template into a buffer so that a failure can
// still produce a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.serverError(w, r, "rendering template", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("writing response")
	}
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func inputFromForm(r *http.Request) client.Input {
	return client.Input{
		Name:            r.PostFormValue("name"),
		HouseAddress:    r.PostFormValue("house_address"),
		RegisterAddress: r.PostFormValue("register_address"),
		NextFollow:      r.PostFormValue("next_follow"),
		Notes:           r.PostFormValue("notes"),
	}
}

// parseID reads the {id} URL parameter.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
