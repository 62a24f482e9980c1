// Package nav routes between dashboard views. A view owns its own
// background work (pollers, timers) and is activated when its route
// becomes current and deactivated when the user navigates away, so at
// most one view is consuming resources at a time.
package nav

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// View is a routable screen. Activate starts the view's background
// work; Deactivate stops it and must not return until that work has
// fully wound down.
type View interface {
	Activate(ctx context.Context) error
	Deactivate()
}

// Shell holds the route table and the currently active view.
type Shell struct {
	mu      sync.Mutex
	routes  map[string]View
	current View
	path    string
	logger  *slog.Logger
}

// NewShell creates a shell with an empty route table.
func NewShell(logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{
		routes: make(map[string]View),
		logger: logger,
	}
}

// Register adds a route. Registering an existing path replaces its view.
func (s *Shell) Register(path string, v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = v
}

// Navigate switches to the view registered at path. The current view is
// deactivated before the next one is activated, so the outgoing view's
// pollers are fully stopped before the incoming view starts its own.
// Navigating to the current path is a no-op. An unknown path leaves the
// current view in place.
func (s *Shell) Navigate(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.routes[path]
	if !ok {
		return fmt.Errorf("no route registered for %q", path)
	}
	if s.path == path && s.current != nil {
		return nil
	}

	if s.current != nil {
		s.logger.Debug("deactivating view", "path", s.path)
		s.current.Deactivate()
		s.current = nil
		s.path = ""
	}

	if err := next.Activate(ctx); err != nil {
		return fmt.Errorf("activating %q: %w", path, err)
	}
	s.current = next
	s.path = path
	s.logger.Debug("view activated", "path", path)
	return nil
}

// Current returns the active path, or "" when no view is active.
func (s *Shell) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Close deactivates the current view, if any.
func (s *Shell) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current.Deactivate()
		s.current = nil
		s.path = ""
	}
}
