package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"news_curator/internal/classifier"
	"news_curator/internal/domain"
	"news_curator/internal/metrics"
)

type Config struct {
	Feeds    []domain.FeedSource
	RuleTier int
	AITier   int
	AIWindow int
	MinScore int // articles scoring at or below this are dropped
}

// Dependencies groups the collaborators of a Recommender. Selector,
// Persona and Publisher are optional.
type Dependencies struct {
	Store       ArticleStore
	Fetcher     FeedFetcher
	Classifier  *classifier.Classifier
	Selector    ArticleSelector
	Persona     PersonaRefresher
	PersonaView PersonaReader
	Preferences PreferencesStore
	Publisher   Publisher
}

type Recommender struct {
	store       ArticleStore
	fetcher     FeedFetcher
	classifier  *classifier.Classifier
	selector    ArticleSelector
	persona     PersonaRefresher
	personaView PersonaReader
	prefs       PreferencesStore
	publisher   Publisher
	cfg         Config
	now         func() time.Time
	logger      *slog.Logger

	// refreshMu serializes refreshes so concurrent callers never merge
	// tags against a stale read.
	refreshMu sync.Mutex
}

func NewRecommender(deps Dependencies, cfg Config, logger *slog.Logger) *Recommender {
	if cfg.RuleTier <= 0 {
		cfg.RuleTier = 3
	}
	if cfg.AITier <= 0 {
		cfg.AITier = 4
	}
	if cfg.AIWindow <= 0 {
		cfg.AIWindow = 20
	}
	cls := deps.Classifier
	if cls == nil {
		cls = classifier.New()
	}

	return &Recommender{
		store:       deps.Store,
		fetcher:     deps.Fetcher,
		classifier:  cls,
		selector:    deps.Selector,
		persona:     deps.Persona,
		personaView: deps.PersonaView,
		prefs:       deps.Preferences,
		publisher:   deps.Publisher,
		cfg:         cfg,
		now:         time.Now,
		logger:      logger.With("component", "recommender"),
	}
}

// Refresh fetches every configured feed concurrently, classifies the items
// and merges them into the store. It returns the number of new articles.
// Feed failures are logged and skipped; store failures are returned.
func (r *Recommender) Refresh(ctx context.Context) (int, error) {
	stats, err := r.RefreshStats(ctx)
	if err != nil {
		return 0, err
	}
	return stats.New, nil
}

// RefreshStats is Refresh with the full run statistics.
func (r *Recommender) RefreshStats(ctx context.Context) (*domain.RefreshStats, error) {
	r.refreshMu.Lock()
	defer r.refreshMu.Unlock()

	startTime := time.Now()
	r.logger.Info("starting refresh", "feeds", len(r.cfg.Feeds))

	results := make([][]domain.Article, len(r.cfg.Feeds))
	failed := make([]bool, len(r.cfg.Feeds))

	g, gctx := errgroup.WithContext(ctx)
	for i, feed := range r.cfg.Feeds {
		g.Go(func() error {
			articles, err := r.fetcher.Fetch(gctx, feed)
			metrics.RecordFeedFetch(err == nil)
			if err != nil {
				r.logger.Warn("feed skipped", "url", feed.URL, "error", err)
				failed[i] = true
				return nil
			}

			for j := range articles {
				a := &articles[j]
				a.Tags = r.classifier.Classify(a.Title, a.Summary, feed.Category)
			}
			results[i] = articles
			return nil
		})
	}
	_ = g.Wait()

	stats := &domain.RefreshStats{Feeds: len(r.cfg.Feeds)}
	var batch []domain.Article
	for i, articles := range results {
		if failed[i] {
			stats.FeedsFailed++
		}
		for _, a := range articles {
			stats.Fetched++
			if a.URL == "" {
				stats.Skipped++
				r.logger.Debug("dropping article without link", "feed", r.cfg.Feeds[i].URL, "title", a.Title)
				continue
			}
			batch = append(batch, a)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	newCount, err := r.store.UpsertMany(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("store articles: %w", err)
	}
	stats.New = newCount
	stats.Duration = time.Since(startTime)

	metrics.RecordRefresh(newCount, len(batch)-newCount, stats.Duration.Seconds())

	if r.publisher != nil {
		if err := r.publisher.PublishRefresh(ctx, stats); err != nil {
			r.logger.Warn("publish refresh event", "error", err)
		}
	}

	r.logger.Info("refresh completed",
		"feeds", stats.Feeds,
		"feeds_failed", stats.FeedsFailed,
		"fetched", stats.Fetched,
		"skipped", stats.Skipped,
		"new", stats.New,
		"duration", stats.Duration,
	)

	return stats, nil
}

// Recommend returns the rule-based tier followed by the AI-assisted tier.
func (r *Recommender) Recommend(ctx context.Context) ([]domain.Article, error) {
	candidates, err := r.store.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	interests := r.prefs.Preferences().InterestedTags
	ranked := rank(candidates, interests, r.cfg.MinScore)

	ruleCount := min(r.cfg.RuleTier, len(ranked))
	result := make([]domain.Article, 0, r.cfg.RuleTier+r.cfg.AITier)
	result = append(result, ranked[:ruleCount]...)

	rest := ranked[ruleCount:]
	window := rest[:min(r.cfg.AIWindow, len(rest))]
	result = append(result, r.aiTier(ctx, window, interests)...)

	r.logger.Debug("recommendations built",
		"candidates", len(candidates),
		"ranked", len(ranked),
		"returned", len(result),
	)
	return result, nil
}

// aiTier asks the selector for picks out of window. Any failure, or an
// answer that matches nothing, falls back to the head of the window.
func (r *Recommender) aiTier(ctx context.Context, window []domain.Article, interests []domain.Category) []domain.Article {
	if len(window) == 0 {
		return nil
	}
	fallback := window[:min(r.cfg.AITier, len(window))]

	if r.selector == nil {
		metrics.RecordAISelection("skipped")
		return fallback
	}

	var persona string
	if r.personaView != nil {
		persona = r.personaView.Persona().Description
	}

	ids, err := r.selector.SelectArticles(ctx, window, persona, interests, r.cfg.AITier)
	if err != nil {
		r.logger.Warn("ai selection failed, using fallback", "error", err)
		metrics.RecordAISelection("fallback")
		return fallback
	}

	byID := make(map[string]domain.Article, len(window))
	for _, a := range window {
		if _, ok := byID[a.ID]; !ok {
			byID[a.ID] = a
		}
	}

	picked := make([]domain.Article, 0, r.cfg.AITier)
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		picked = append(picked, a)
		if len(picked) == r.cfg.AITier {
			break
		}
	}

	if len(picked) == 0 {
		r.logger.Warn("ai selection matched no candidates, using fallback", "returned_ids", len(ids))
		metrics.RecordAISelection("fallback")
		return fallback
	}

	metrics.RecordAISelection("selected")
	return picked
}

// RecordFeedback stores the verdict for id and, on every configured
// boundary, refreshes the persona before returning.
func (r *Recommender) RecordFeedback(ctx context.Context, id string, helpful bool, reason string) error {
	feedback := domain.Feedback{IsHelpful: helpful, Reason: reason, CreatedAt: r.now().UTC()}

	if err := r.store.RecordFeedback(ctx, id, helpful, reason, feedback.CreatedAt); err != nil {
		return fmt.Errorf("record feedback for %s: %w", id, err)
	}
	metrics.RecordFeedback(helpful)
	r.logger.Info("feedback recorded", "id", id, "helpful", helpful)

	if r.publisher != nil {
		if err := r.publisher.PublishFeedback(ctx, id, feedback); err != nil {
			r.logger.Warn("publish feedback event", "id", id, "error", err)
		}
	}

	if r.persona == nil {
		return nil
	}

	count, err := r.store.FeedbackCount(ctx)
	if err != nil {
		r.logger.Warn("count feedback", "error", err)
		return nil
	}
	if r.persona.MaybeRefresh(ctx, count) {
		metrics.PersonaRefreshTotal.Inc()
	}
	return nil
}

func (r *Recommender) Interests() []domain.Category {
	return r.prefs.Preferences().InterestedTags
}

func (r *Recommender) SetInterests(tags []domain.Category) error {
	if err := r.prefs.SetInterests(tags); err != nil {
		return fmt.Errorf("save interests: %w", err)
	}
	r.logger.Info("interests updated", "tags", tags)
	return nil
}

// Persona returns the current persona, or the zero value when none is
// tracked.
func (r *Recommender) Persona() domain.UserPersona {
	if r.personaView == nil {
		return domain.UserPersona{}
	}
	return r.personaView.Persona()
}
