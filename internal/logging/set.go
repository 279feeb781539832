package logging

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Set is a root logger and the component loggers derived from it.
// Derived loggers copy the level when created, so level changes go through SetLevel.
type Set struct {
	mu       sync.Mutex
	root     *log.Logger
	children []*log.Logger
}

// NewSet creates a root logger writing to w at the given level name
func NewSet(w io.Writer, level string) *Set {
	return &Set{root: New(w, level)}
}

// DiscardSet returns a set whose loggers drop everything
func DiscardSet() *Set {
	return &Set{root: Discard()}
}

// Root returns the application logger
func (s *Set) Root() *log.Logger {
	return s.root
}

// Component returns a logger prefixed with the component name
func (s *Set) Component(name string) *log.Logger {
	child := s.root.WithPrefix(Prefix + "/" + name)

	s.mu.Lock()
	s.children = append(s.children, child)
	s.mu.Unlock()
	return child
}

// SetLevel applies a level name to the root and every component logger
func (s *Set) SetLevel(level string) {
	lvl := ParseLevel(level)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.root.SetLevel(lvl)
	for _, child := range s.children {
		child.SetLevel(lvl)
	}
}
