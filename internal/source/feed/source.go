// Package feed fetches syndication feeds over HTTP and parses them into
// article candidates.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"news_curator/internal/domain"
)

const userAgent = "NewsCurator/1.0"

// Config holds feed fetching configuration.
type Config struct {
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	HostInterval   time.Duration
	MaxBodyBytes   int64
}

// Source fetches and parses configured feeds.
type Source struct {
	httpClient     *http.Client
	parser         *Parser
	limiter        *HostRateLimiter
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	maxBodyBytes   int64
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	var limiter *HostRateLimiter
	if cfg.HostInterval > 0 {
		limiter = NewHostRateLimiter(cfg.HostInterval)
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		parser:         NewParser(),
		limiter:        limiter,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		maxBodyBytes:   cfg.MaxBodyBytes,
		logger:         logger.With("component", "feed"),
	}
}

// Fetch downloads one feed and returns its items tagged with the feed's
// category. Parse failures are not retried.
func (s *Source) Fetch(ctx context.Context, feed domain.FeedSource) ([]domain.Article, error) {
	body, err := s.download(ctx, feed.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", feed.URL, err)
	}

	articles, err := s.parser.Parse(body, feed.Category)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", feed.URL, err)
	}

	s.logger.Debug("fetched feed", "url", feed.URL, "items", len(articles))
	return articles, nil
}

func (s *Source) download(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		body, err = s.doRequest(ctx, url)
		if err == nil {
			return body, nil
		}

		var perm *permanentError
		if errors.As(err, &perm) || attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	if s.maxAttempts > 1 {
		return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
	}
	return nil, err
}

func (s *Source) doRequest(ctx context.Context, url string) ([]byte, error) {
	if s.limiter != nil {
		if err := s.limiter.WaitForHost(ctx, url); err != nil {
			return nil, &permanentError{err: fmt.Errorf("rate limit: %w", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &permanentError{err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status: %d", resp.StatusCode)
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, &permanentError{err: err}
		}
		return nil, err
	}

	var reader io.Reader = resp.Body
	if s.maxBodyBytes > 0 {
		reader = io.LimitReader(resp.Body, s.maxBodyBytes)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if s.maxBackoff > 0 && backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

// permanentError marks failures that another attempt cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }
