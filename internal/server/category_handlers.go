package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"kanban-board/internal/apperr"
)

// handleAddCategory creates a category from the board's form and sends the
// browser back to it.
func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, apperr.Validation("invalid form data"))
		return
	}

	if _, err := s.categorySvc.Create(r.Context(), s.defaultUser, r.PostFormValue("category_name")); err != nil {
		writeError(w, err)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// handleDeleteCategory deletes a category and every task inside it.
func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.categorySvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateCategoryOrder applies a positional reorder: the index of each
// id in category_ids becomes its sort_order.
func (s *Server) handleUpdateCategoryOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CategoryIDs []string `json:"category_ids"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(body.CategoryIDs))
	for _, raw := range body.CategoryIDs {
		id, err := parseID(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		ids = append(ids, id)
	}

	updated, err := s.categorySvc.Reorder(r.Context(), ids)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "category order updated",
		"updated": updated,
	})
}
