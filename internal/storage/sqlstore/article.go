package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"news_curator/internal/domain"
)

// lookupChunk keeps IN (...) lists under SQLite's bound-parameter limit.
const lookupChunk = 900

// upsertLockKey names the Postgres advisory lock that serializes UpsertMany
// across processes, so the tag pre-fetch and the writes act as one step.
const upsertLockKey int64 = 0x6e637572 // "ncur"

const feedbackTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const articleColumns = `url, id, title, summary, tags, published_at, image_url, author,
	feedback_helpful, feedback_reason, feedback_at`

type ArticleStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db, tm: NewTransactionManager(db)}
}

// UpsertMany writes the batch in one transaction and reports how many URLs
// were not stored before. Known URLs keep their id and feedback and gain any
// tags they did not have.
func (s *ArticleStore) UpsertMany(ctx context.Context, articles []domain.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	newCount := 0
	err := s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, s.db)

		if s.db.DriverName() == DriverPostgres {
			if _, err := exec.ExecContext(txCtx, `SELECT pg_advisory_xact_lock($1)`, upsertLockKey); err != nil {
				return fmt.Errorf("lock articles: %w", err)
			}
		}

		urls := make([]string, 0, len(articles))
		for i := range articles {
			urls = append(urls, articles[i].URL)
		}

		known, err := s.tagsByURL(txCtx, exec, urls)
		if err != nil {
			return fmt.Errorf("lookup existing: %w", err)
		}

		query := exec.Rebind(`
			INSERT INTO articles (url, id, title, summary, tags, published_at, image_url, author)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (url) DO UPDATE SET
				title = excluded.title,
				summary = excluded.summary,
				tags = excluded.tags,
				published_at = excluded.published_at,
				image_url = excluded.image_url,
				author = excluded.author`)

		for i := range articles {
			a := &articles[i]

			tags, exists := known[a.URL]
			if exists {
				tags = domain.MergeTags(tags, a.Tags)
			} else {
				tags = domain.MergeTags(nil, a.Tags)
				newCount++
			}
			known[a.URL] = tags

			_, err := exec.ExecContext(txCtx, query,
				a.URL,
				a.ID,
				a.Title,
				a.Summary,
				tagList(tags),
				a.PublishedAt,
				a.ImageURL,
				a.Author,
			)
			if err != nil {
				return fmt.Errorf("upsert %s: %w", a.URL, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return newCount, nil
}

func (s *ArticleStore) tagsByURL(ctx context.Context, exec sqlx.ExtContext, urls []string) (map[string][]domain.Category, error) {
	result := make(map[string][]domain.Category, len(urls))

	for start := 0; start < len(urls); start += lookupChunk {
		end := min(start+lookupChunk, len(urls))

		query, args, err := sqlx.In(`SELECT url, tags FROM articles WHERE url IN (?)`, urls[start:end])
		if err != nil {
			return nil, err
		}

		var rows []struct {
			URL  string  `db:"url"`
			Tags tagList `db:"tags"`
		}
		if err := sqlx.SelectContext(ctx, exec, &rows, exec.Rebind(query), args...); err != nil {
			return nil, err
		}
		for _, r := range rows {
			result[r.URL] = r.Tags
		}
	}

	return result, nil
}

// Candidates returns every article without feedback, newest first.
func (s *ArticleStore) Candidates(ctx context.Context) ([]domain.Article, error) {
	var rows []articleRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows,
		`SELECT `+articleColumns+` FROM articles
		WHERE feedback_helpful IS NULL
		ORDER BY published_at DESC, url`)
	if err != nil {
		return nil, fmt.Errorf("select candidates: %w", err)
	}

	articles := make([]domain.Article, 0, len(rows))
	for i := range rows {
		a, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// AllFeedback returns the feedback of every judged article, newest first.
func (s *ArticleStore) AllFeedback(ctx context.Context) ([]domain.Feedback, error) {
	var rows []struct {
		Helpful bool           `db:"feedback_helpful"`
		Reason  sql.NullString `db:"feedback_reason"`
		At      sql.NullString `db:"feedback_at"`
	}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows,
		`SELECT feedback_helpful, feedback_reason, feedback_at FROM articles
		WHERE feedback_helpful IS NOT NULL
		ORDER BY feedback_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("select feedback: %w", err)
	}

	feedback := make([]domain.Feedback, 0, len(rows))
	for _, r := range rows {
		at, err := parseFeedbackTime(r.At)
		if err != nil {
			return nil, err
		}
		feedback = append(feedback, domain.Feedback{
			IsHelpful: r.Helpful,
			Reason:    r.Reason.String,
			CreatedAt: at,
		})
	}
	return feedback, nil
}

// RecordFeedback overwrites the feedback of every row carrying id.
func (s *ArticleStore) RecordFeedback(ctx context.Context, id string, helpful bool, reason string, at time.Time) error {
	exec := GetExecutor(ctx, s.db)
	res, err := exec.ExecContext(ctx,
		exec.Rebind(`UPDATE articles SET feedback_helpful = ?, feedback_reason = ?, feedback_at = ? WHERE id = ?`),
		helpful, reason, at.UTC().Format(feedbackTimeLayout), id,
	)
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}
	if n == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (s *ArticleStore) FeedbackCount(ctx context.Context) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		`SELECT COUNT(*) FROM articles WHERE feedback_helpful IS NOT NULL`)
	if err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return count, nil
}

type articleRow struct {
	URL             string         `db:"url"`
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Summary         string         `db:"summary"`
	Tags            tagList        `db:"tags"`
	PublishedAt     string         `db:"published_at"`
	ImageURL        sql.NullString `db:"image_url"`
	Author          sql.NullString `db:"author"`
	FeedbackHelpful sql.NullBool   `db:"feedback_helpful"`
	FeedbackReason  sql.NullString `db:"feedback_reason"`
	FeedbackAt      sql.NullString `db:"feedback_at"`
}

func (r *articleRow) toDomain() (domain.Article, error) {
	a := domain.Article{
		ID:          r.ID,
		Title:       r.Title,
		Summary:     r.Summary,
		URL:         r.URL,
		Tags:        []domain.Category(r.Tags),
		PublishedAt: r.PublishedAt,
		ImageURL:    nullString(r.ImageURL),
		Author:      nullString(r.Author),
	}

	if r.FeedbackHelpful.Valid {
		at, err := parseFeedbackTime(r.FeedbackAt)
		if err != nil {
			return domain.Article{}, err
		}
		a.Feedback = &domain.Feedback{
			IsHelpful: r.FeedbackHelpful.Bool,
			Reason:    r.FeedbackReason.String,
			CreatedAt: at,
		}
	}
	return a, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func parseFeedbackTime(ns sql.NullString) (time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, ns.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse feedback time %q: %w", ns.String, err)
	}
	return t, nil
}

// tagList stores categories as a JSON array in a TEXT column.
type tagList []domain.Category

func (t tagList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]domain.Category(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *tagList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*t = tagList{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return errors.New("tags: unsupported column type")
	}

	var tags []domain.Category
	if err := json.Unmarshal(data, &tags); err != nil {
		return fmt.Errorf("decode tags: %w", err)
	}
	if tags == nil {
		tags = []domain.Category{}
	}
	*t = tags
	return nil
}
