// Package persona refreshes the reader persona from accumulated feedback.
package persona

import (
	"context"
	"log/slog"
	"time"

	"news_curator/internal/domain"
)

const (
	DefaultEvery   = 3
	DefaultHistory = 20
)

type FeedbackSource interface {
	AllFeedback(ctx context.Context) ([]domain.Feedback, error)
}

type Describer interface {
	DescribePersona(ctx context.Context, current string, history []domain.Feedback) (string, error)
}

type Store interface {
	Persona() domain.UserPersona
	SetPersona(p domain.UserPersona) error
}

type Config struct {
	Every   int
	History int
}

type Adapter struct {
	feedback  FeedbackSource
	describer Describer
	store     Store
	every     int
	history   int
	now       func() time.Time
	logger    *slog.Logger
}

// NewAdapter returns an adapter that never fires when describer is nil.
func NewAdapter(feedback FeedbackSource, describer Describer, store Store, cfg Config, logger *slog.Logger) *Adapter {
	if cfg.Every <= 0 {
		cfg.Every = DefaultEvery
	}
	if cfg.History <= 0 {
		cfg.History = DefaultHistory
	}
	return &Adapter{
		feedback:  feedback,
		describer: describer,
		store:     store,
		every:     cfg.Every,
		history:   cfg.History,
		now:       time.Now,
		logger:    logger.With("component", "persona"),
	}
}

// ShouldRefresh reports whether feedbackCount lands on a refresh boundary.
func (a *Adapter) ShouldRefresh(feedbackCount int) bool {
	return feedbackCount > 0 && feedbackCount%a.every == 0
}

// MaybeRefresh rebuilds the persona when feedbackCount is on a boundary and
// a describer is configured. It reports whether a rebuild was attempted.
// Failures are logged and leave the stored persona untouched.
func (a *Adapter) MaybeRefresh(ctx context.Context, feedbackCount int) bool {
	if a.describer == nil || !a.ShouldRefresh(feedbackCount) {
		return false
	}

	history, err := a.feedback.AllFeedback(ctx)
	if err != nil {
		a.logger.Warn("load feedback for persona", "error", err)
		return true
	}
	if len(history) > a.history {
		history = history[:a.history]
	}

	current := a.store.Persona()
	description, err := a.describer.DescribePersona(ctx, current.Description, history)
	if err != nil {
		a.logger.Warn("persona refresh failed, keeping previous", "error", err)
		return true
	}

	next := domain.UserPersona{Description: description, LastUpdated: a.now().UTC()}
	if err := a.store.SetPersona(next); err != nil {
		a.logger.Error("persist persona", "error", err)
		return true
	}

	a.logger.Info("persona refreshed", "feedback_count", feedbackCount, "history", len(history))
	return true
}
