package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"kanban-board/internal/apperr"
	"kanban-board/internal/model"
	"kanban-board/internal/repository"
	"kanban-board/internal/service"
)

// taskOrderItem is one entry of a batch reorder request. Status and
// category_id are optional; sort_order always applies.
type taskOrderItem struct {
	ID         string `json:"id"`
	SortOrder  int    `json:"sort_order"`
	Status     string `json:"status,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

func toOrderChanges(items []taskOrderItem) ([]repository.PostOrderChange, error) {
	changes := make([]repository.PostOrderChange, 0, len(items))
	for _, item := range items {
		id, err := parseID(item.ID)
		if err != nil {
			return nil, err
		}
		change := repository.PostOrderChange{ID: id, SortOrder: item.SortOrder}
		if item.Status != "" {
			status := model.Status(item.Status)
			change.Status = &status
		}
		if item.CategoryID != "" {
			categoryID, err := parseID(item.CategoryID)
			if err != nil {
				return nil, err
			}
			change.CategoryID = &categoryID
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// handleAddTask creates a task in the todo lane of the given category.
func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		CategoryID string `json:"category_id"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if body.CategoryID == "" {
		writeError(w, apperr.Validation("category_id is required"))
		return
	}
	categoryID, err := parseID(body.CategoryID)
	if err != nil {
		writeError(w, err)
		return
	}

	post, err := s.taskSvc.Create(r.Context(), s.defaultUser, service.TaskInput{
		Title:      body.Title,
		Content:    body.Content,
		CategoryID: categoryID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// handleEditTask updates title, content and optionally the category. The
// board form posts urlencoded data and expects a redirect; script callers
// send JSON and get the updated task back.
func (s *Server) handleEditTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	var edit service.TaskEdit
	isJSON := strings.Contains(r.Header.Get("Content-Type"), "application/json")
	if isJSON {
		var body struct {
			Title      string `json:"title"`
			Content    string `json:"content"`
			CategoryID string `json:"category_id"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, err)
			return
		}
		edit.Title = body.Title
		edit.Content = body.Content
		if body.CategoryID != "" {
			categoryID, err := parseID(body.CategoryID)
			if err != nil {
				writeError(w, err)
				return
			}
			edit.CategoryID = &categoryID
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeError(w, apperr.Validation("invalid form data"))
			return
		}
		edit.Title = r.PostFormValue("title")
		edit.Content = r.PostFormValue("content")
		if raw := r.PostFormValue("category_id"); raw != "" {
			categoryID, err := parseID(raw)
			if err != nil {
				writeError(w, err)
				return
			}
			edit.CategoryID = &categoryID
		}
	}

	post, err := s.taskSvc.Edit(r.Context(), id, edit)
	if err != nil {
		writeError(w, err)
		return
	}

	if isJSON {
		writeJSON(w, http.StatusOK, post)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.taskSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateTaskOrder applies a batch of position (and optional lane or
// category) changes. The board script has sent the batch under both "posts"
// and "tasks" over time, so both keys are accepted.
func (s *Server) handleUpdateTaskOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Posts []taskOrderItem `json:"posts"`
		Tasks []taskOrderItem `json:"tasks"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	items := body.Posts
	if len(items) == 0 {
		items = body.Tasks
	}
	changes, err := toOrderChanges(items)
	if err != nil {
		writeError(w, err)
		return
	}

	updated, err := s.taskSvc.Reorder(r.Context(), changes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "task order updated",
		"updated": updated,
	})
}

// handleUpdateTaskStatus moves a single task to another lane.
func (s *Server) handleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	post, err := s.taskSvc.SetStatus(r.Context(), id, model.Status(body.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// handleUpdateTaskOrderByStatus is the lane-drag endpoint: every entry
// carries both a lane and a position.
func (s *Server) handleUpdateTaskOrderByStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tasks []taskOrderItem `json:"tasks"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	changes, err := toOrderChanges(body.Tasks)
	if err != nil {
		writeError(w, err)
		return
	}

	updated, err := s.taskSvc.Reorder(r.Context(), changes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"updated": updated})
}
