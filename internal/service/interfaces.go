package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"news_curator/internal/domain"
)

type ArticleStore interface {
	UpsertMany(ctx context.Context, articles []domain.Article) (int, error)
	Candidates(ctx context.Context) ([]domain.Article, error)
	RecordFeedback(ctx context.Context, id string, helpful bool, reason string, at time.Time) error
	FeedbackCount(ctx context.Context) (int, error)
}

type FeedFetcher interface {
	Fetch(ctx context.Context, feed domain.FeedSource) ([]domain.Article, error)
}

type ArticleSelector interface {
	SelectArticles(ctx context.Context, candidates []domain.Article, persona string, interests []domain.Category, count int) ([]string, error)
}

type PersonaRefresher interface {
	MaybeRefresh(ctx context.Context, feedbackCount int) bool
}

type PersonaReader interface {
	Persona() domain.UserPersona
}

type PreferencesStore interface {
	Preferences() domain.UserPreferences
	SetInterests(tags []domain.Category) error
}

type Publisher interface {
	PublishFeedback(ctx context.Context, articleID string, feedback domain.Feedback) error
	PublishRefresh(ctx context.Context, stats *domain.RefreshStats) error
	Close() error
}
