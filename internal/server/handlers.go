package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/taskdock/taskd/models"
	"github.com/taskdock/taskd/query"
)

// handleTasks dispatches /tasks by method.
func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListTasks(w, r)
	case http.MethodPost:
		s.handleCreateTask(w, r)
	default:
		s.handleNotFound(w, r)
	}
}

// handleListTasks serves GET /tasks with optional isDone, priority, limit
// and offset query parameters. Parameters are validated in that order and
// the first invalid one rejects the request.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	var filter models.TaskFilter

	if raw, ok := queryParam(params, "isDone"); ok {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true":
			filter.IsDone = boolPtr(true)
		case "false":
			filter.IsDone = boolPtr(false)
		default:
			writeError(w, http.StatusBadRequest, "Query 'isDone' must be 'true' or 'false'")
			return
		}
	}

	if raw, ok := queryParam(params, "priority"); ok {
		priority, err := models.ParsePriority(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Query 'priority' must be one of: low, normal, high")
			return
		}
		filter.Priority = &priority
	}

	page := query.Page{Offset: 0, Limit: query.NoLimit}

	if raw, ok := queryParam(params, "limit"); ok {
		limit, err := parseNonNegativeInt(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Query 'limit' must be a non-negative integer")
			return
		}
		page.Limit = limit
	}

	if raw, ok := queryParam(params, "offset"); ok {
		offset, err := parseNonNegativeInt(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Query 'offset' must be a non-negative integer")
			return
		}
		page.Offset = offset
	}

	tasks := query.Apply(s.store.List(filter), page)
	writeJSON(w, http.StatusOK, tasks)
}

// handleCreateTask serves POST /tasks.
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	if !hasJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	title, ok := body["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		writeError(w, http.StatusBadRequest, "Field 'title' must be a non-empty string")
		return
	}

	rawPriority, ok := body["priority"].(string)
	if !ok {
		writeError(w, http.StatusBadRequest, "Field 'priority' must be one of: low, normal, high")
		return
	}
	priority, err := models.ParsePriority(rawPriority)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Field 'priority' must be one of: low, normal, high")
		return
	}

	created, err := s.store.Create(title, priority)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save task")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/tasks/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

// handleCompleteTask serves POST /tasks/{id}/complete. The id must be all
// digits; anything else is an unknown route.
func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.handleNotFound(w, r)
		return
	}

	id, ok := taskID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	completed, err := s.store.MarkCompleted(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save task")
		return
	}
	if !completed {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// handleTask serves DELETE /tasks/{id}; every other method is an unknown
// route.
func (s *Server) handleTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		s.handleNotFound(w, r)
		return
	}

	id, ok := taskID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	deleted, err := s.store.Delete(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save task")
		return
	}
	if !deleted {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

// taskID extracts and parses the {id} path value.
func taskID(r *http.Request) (int, bool) {
	raw := r.PathValue("id")
	if !isDigits(raw) {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// queryParam reports a parameter as present only when it has a non-blank
// value, so "?limit=" reads the same as the parameter being absent.
func queryParam(params url.Values, name string) (string, bool) {
	values, ok := params[name]
	if !ok || len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}

// parseNonNegativeInt accepts digits-only decimal values.
func parseNonNegativeInt(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if !isDigits(trimmed) {
		return 0, fmt.Errorf("not a non-negative integer: %q", raw)
	}
	return strconv.Atoi(trimmed)
}

func hasJSONContentType(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return mediaType == "application/json"
}

func boolPtr(b bool) *bool {
	return &b
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
