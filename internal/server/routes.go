package server

import "net/http"

// registerRoutes sets up all API endpoints.
// Patterns are path-only on purpose: the API answers 404 rather than 405 for
// any method/route combination it does not serve, so method dispatch lives
// in the handlers.
func (s *Server) registerRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/tasks", s.handleTasks)
	mux.HandleFunc("/tasks/{id}", s.handleTask)
	mux.HandleFunc("/tasks/{id}/complete", s.handleCompleteTask)
	mux.HandleFunc("/", s.handleNotFound)

	return s.loggingMiddleware(mux)
}
