package server

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"kanban-board/internal/model"
)

// laneView is one rendered lane; maps iterate in key order in templates, so
// the board builds a slice to keep todo/progress/archive order.
type laneView struct {
	Status model.Status
	Posts  []model.BoardPost
}

// handleAdmin renders the board, optionally filtered by ?category_id=.
func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	var filter *uuid.UUID
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		filter = &id
	}

	view, err := s.boardSvc.Board(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	lanes := make([]laneView, 0, len(model.Statuses()))
	for _, status := range model.Statuses() {
		lanes = append(lanes, laneView{Status: status, Posts: view.Lanes[status]})
	}

	data := map[string]any{
		"Board":              view,
		"Lanes":              lanes,
		"SelectedCategoryID": filter,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "admin.html", data); err != nil {
		slog.Error("render admin", "error", err)
	}
}

// handleRegister renders the registration placeholder; there is no account
// handling behind it yet.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "register.html", nil); err != nil {
		slog.Error("render register", "error", err)
	}
}
