package profile

import (
	"log/slog"
	"path/filepath"
	"sync"

	"news_curator/internal/domain"
)

// PreferencesStore owns the single UserPreferences value.
type PreferencesStore struct {
	mu     sync.Mutex
	path   string
	value  domain.UserPreferences
	logger *slog.Logger
}

func LoadPreferences(dir string, logger *slog.Logger) *PreferencesStore {
	s := &PreferencesStore{
		path:   filepath.Join(dir, PreferencesFile),
		logger: logger.With("component", "preferences_store"),
	}

	p := loadOrDefault[domain.UserPreferences](s.path, s.logger)
	if p.InterestedTags == nil {
		p.InterestedTags = []domain.Category{}
	}
	s.value = p
	return s
}

// Preferences returns a copy callers may modify freely.
func (s *PreferencesStore) Preferences() domain.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value.Clone()
}

// SetInterests replaces the interest list, dropping duplicates and empty
// entries, and persists it.
func (s *PreferencesStore) SetInterests(tags []domain.Category) error {
	cleaned := make([]domain.Category, 0, len(tags))
	for _, t := range tags {
		if t == "" || domain.ContainsCategory(cleaned, t) {
			continue
		}
		cleaned = append(cleaned, t)
	}
	next := domain.UserPreferences{InterestedTags: cleaned}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.path, next); err != nil {
		return err
	}
	s.value = next
	return nil
}
