package web

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/evcraddock/client-tracker/internal/export"
)

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, export.FormatCSV)
}

func (s *Server) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, export.FormatXLSX)
}

// serveExport writes every client as an attachment in the given format.
// The body is built in memory first so a failure still yields a 500.
func (s *Server) serveExport(w http.ResponseWriter, r *http.Request, format export.Format) {
	clients, err := s.clients.All(r.Context())
	if err != nil {
		s.serverError(w, r, "loading clients for export", err)
		return
	}

	var buf bytes.Buffer
	if err := format.Write(&buf, clients); err != nil {
		s.serverError(w, r, "writing export", err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename()))
	w.Header().Set("Content-Length", fmt.Sprint(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug().Err(err).Msg("writing export response")
		return
	}

	s.metrics.ObserveExport(string(format))
}
