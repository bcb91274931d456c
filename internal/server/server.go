package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/taskdock/taskd/store"
)

// Server exposes the task store over HTTP.
type Server struct {
	store  store.TaskStore
	server *http.Server
}

// New builds a Server bound to the given host and port, serving the routes
// in routes.go against the provided store.
func New(host string, port int, st store.TaskStore) *Server {
	s := &Server{store: st}
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", host, port),
		Handler: s.registerRoutes(),
	}
	return s
}

// Addr returns the address the server is configured to listen on.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start begins serving in a background goroutine tracked by wg.
// A listen failure is reported on errChan.
func (s *Server) Start(wg *sync.WaitGroup, errChan chan<- error) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
