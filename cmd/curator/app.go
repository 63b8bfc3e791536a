package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"news_curator/internal/classifier"
	"news_curator/internal/config"
	"news_curator/internal/llm"
	"news_curator/internal/persona"
	"news_curator/internal/profile"
	"news_curator/internal/publisher"
	"news_curator/internal/service"
	"news_curator/internal/source/feed"
	"news_curator/internal/storage/sqlstore"
)

// app holds the wired components shared by every command.
type app struct {
	cfg         *config.Config
	logger      *slog.Logger
	db          *sqlx.DB
	publisher   *publisher.RabbitMQ
	recommender *service.Recommender
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	cls, err := buildClassifier(cfg.Tagging.Rules)
	if err != nil {
		return nil, err
	}

	db, err := sqlstore.Open(ctx, cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Info("connected to database", "driver", cfg.Database.Driver)

	a := &app{cfg: cfg, logger: logger, db: db}
	articleStore := sqlstore.NewArticleStore(db)

	personaStore := profile.LoadPersona(cfg.State.Dir, logger)
	prefsStore := profile.LoadPreferences(cfg.State.Dir, logger)

	var (
		selector  service.ArticleSelector
		describer persona.Describer
		pub       service.Publisher
	)
	if cfg.AI.Enabled() {
		client := llm.New(llm.Config{
			APIKey:  cfg.AI.APIKey,
			Model:   cfg.AI.Model,
			BaseURL: cfg.AI.BaseURL,
			Timeout: cfg.AI.Timeout,
		}, logger)
		selector = client
		describer = client
	} else {
		logger.Info("no AI credential configured, AI ranking and persona updates disabled")
	}

	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Warn("rabbitmq unavailable, events disabled", "error", err)
		} else {
			a.publisher = rabbitMQ
			pub = rabbitMQ
		}
	}

	adapter := persona.NewAdapter(articleStore, describer, personaStore, persona.Config{
		Every:   cfg.Persona.Every,
		History: cfg.Persona.History,
	}, logger)

	source := feed.New(feed.Config{
		Timeout:        cfg.Fetch.Timeout,
		MaxAttempts:    cfg.Fetch.Retry.MaxAttempts,
		InitialBackoff: cfg.Fetch.Retry.InitialBackoff,
		MaxBackoff:     cfg.Fetch.Retry.MaxBackoff,
		HostInterval:   cfg.Fetch.HostInterval,
		MaxBodyBytes:   cfg.Fetch.MaxBodyBytes,
	}, logger)

	a.recommender = service.NewRecommender(service.Dependencies{
		Store:       articleStore,
		Fetcher:     source,
		Classifier:  cls,
		Selector:    selector,
		Persona:     adapter,
		PersonaView: personaStore,
		Preferences: prefsStore,
		Publisher:   pub,
	}, service.Config{
		Feeds:    cfg.Feeds,
		RuleTier: cfg.Ranking.RuleTier,
		AITier:   cfg.Ranking.AITier,
		AIWindow: cfg.Ranking.AIWindow,
		MinScore: *cfg.Ranking.MinScore,
	}, logger)

	return a, nil
}

func (a *app) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("close rabbitmq", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}

func buildClassifier(rules []config.TagRule) (*classifier.Classifier, error) {
	extra := make([]classifier.Rule, 0, len(rules))
	for _, r := range rules {
		rule, err := classifier.KeywordRule(r.Category, r.Keywords)
		if err != nil {
			return nil, fmt.Errorf("tagging rule %s: %w", r.Category, err)
		}
		extra = append(extra, rule)
	}
	return classifier.New(extra...), nil
}
