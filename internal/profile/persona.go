package profile

import (
	"log/slog"
	"path/filepath"
	"sync"

	"news_curator/internal/domain"
)

// PersonaStore owns the single UserPersona value.
type PersonaStore struct {
	mu     sync.Mutex
	path   string
	value  domain.UserPersona
	logger *slog.Logger
}

// LoadPersona reads the persona from dir. Missing or corrupt files yield an
// empty persona.
func LoadPersona(dir string, logger *slog.Logger) *PersonaStore {
	s := &PersonaStore{
		path:   filepath.Join(dir, PersonaFile),
		logger: logger.With("component", "persona_store"),
	}

	p := loadOrDefault[domain.UserPersona](s.path, s.logger)
	s.value = p
	return s
}

func (s *PersonaStore) Persona() domain.UserPersona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// SetPersona persists p and then makes it current. On a write failure the
// previous value stays in place.
func (s *PersonaStore) SetPersona(p domain.UserPersona) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.path, p); err != nil {
		return err
	}
	s.value = p
	return nil
}
