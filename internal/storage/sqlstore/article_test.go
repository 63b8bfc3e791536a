package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"news_curator/internal/domain"
)

// ArticleStoreSuite holds the behaviour shared by every engine. Concrete
// suites only provide the database.
type ArticleStoreSuite struct {
	suite.Suite
	ctx   context.Context
	db    *sqlx.DB
	store *ArticleStore
}

type SQLiteSuite struct {
	ArticleStoreSuite
}

func (s *SQLiteSuite) SetupTest() {
	s.ctx = context.Background()

	db, err := Open(s.ctx, DriverSQLite, filepath.Join(s.T().TempDir(), "articles.db"))
	s.Require().NoError(err)
	s.db = db
	s.store = NewArticleStore(db)
}

func (s *SQLiteSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestSQLiteSuite(t *testing.T) {
	suite.Run(t, new(SQLiteSuite))
}

func article(url string, tags ...domain.Category) domain.Article {
	return domain.Article{
		ID:          "id:" + url,
		Title:       "Title " + url,
		Summary:     "Summary " + url,
		URL:         url,
		Tags:        tags,
		PublishedAt: "2024-01-01T00:00:00Z",
	}
}

func ptr[T any](v T) *T {
	return &v
}

func (s *ArticleStoreSuite) TestUpsertMany_Idempotent() {
	a := article("https://example.com/a", domain.CategoryRust)

	n, err := s.store.UpsertMany(s.ctx, []domain.Article{a})
	s.Require().NoError(err)
	s.Equal(1, n)

	n, err = s.store.UpsertMany(s.ctx, []domain.Article{a})
	s.Require().NoError(err)
	s.Equal(0, n)

	got, err := s.store.Candidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal([]domain.Category{domain.CategoryRust}, got[0].Tags)
}

func (s *ArticleStoreSuite) TestUpsertMany_MergesTagsAndKeepsFeedback() {
	url := "https://example.com/merge"
	_, err := s.store.UpsertMany(s.ctx, []domain.Article{article(url, domain.CategoryRust)})
	s.Require().NoError(err)

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.RecordFeedback(s.ctx, "id:"+url, true, "great", at))

	update := article(url, domain.CategoryAI)
	update.ID = "changed-id"
	update.Title = "New title"
	update.ImageURL = ptr("https://example.com/img.png")
	n, err := s.store.UpsertMany(s.ctx, []domain.Article{update})
	s.Require().NoError(err)
	s.Equal(0, n)

	var row articleRow
	s.Require().NoError(s.db.GetContext(s.ctx, &row,
		s.db.Rebind(`SELECT `+articleColumns+` FROM articles WHERE url = ?`), url))
	got, err := row.toDomain()
	s.Require().NoError(err)

	s.Equal("id:"+url, got.ID)
	s.Equal("New title", got.Title)
	s.Equal([]domain.Category{domain.CategoryRust, domain.CategoryAI}, got.Tags)
	s.Require().NotNil(got.ImageURL)
	s.Equal("https://example.com/img.png", *got.ImageURL)
	s.Require().NotNil(got.Feedback)
	s.True(got.Feedback.IsHelpful)
	s.Equal("great", got.Feedback.Reason)
	s.True(at.Equal(got.Feedback.CreatedAt))
}

func (s *ArticleStoreSuite) TestUpsertMany_DuplicatesInBatch() {
	url := "https://example.com/dup"
	batch := []domain.Article{
		article(url, domain.CategoryWeb),
		article(url, domain.CategoryReact),
		article("https://example.com/other", domain.CategoryGeneral),
	}

	n, err := s.store.UpsertMany(s.ctx, batch)
	s.Require().NoError(err)
	s.Equal(2, n)

	got, err := s.store.Candidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	for _, a := range got {
		if a.URL == url {
			s.Equal([]domain.Category{domain.CategoryWeb, domain.CategoryReact}, a.Tags)
		}
	}
}

func (s *ArticleStoreSuite) TestUpsertMany_LargeBatchSpansLookupChunks() {
	batch := make([]domain.Article, 0, lookupChunk+50)
	for i := 0; i < lookupChunk+50; i++ {
		batch = append(batch, article(fmt.Sprintf("https://example.com/%d", i), domain.CategoryGeneral))
	}

	n, err := s.store.UpsertMany(s.ctx, batch)
	s.Require().NoError(err)
	s.Equal(len(batch), n)

	n, err = s.store.UpsertMany(s.ctx, batch)
	s.Require().NoError(err)
	s.Equal(0, n)
}

func (s *ArticleStoreSuite) TestUpsertMany_Empty() {
	n, err := s.store.UpsertMany(s.ctx, nil)
	s.NoError(err)
	s.Equal(0, n)
}

func (s *ArticleStoreSuite) TestCandidates_ExcludeJudged() {
	_, err := s.store.UpsertMany(s.ctx, []domain.Article{
		article("https://example.com/1", domain.CategoryRust),
		article("https://example.com/2", domain.CategoryRust),
		article("https://example.com/3", domain.CategoryRust),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.store.RecordFeedback(s.ctx, "id:https://example.com/1", true, "", time.Now()))
	s.Require().NoError(s.store.RecordFeedback(s.ctx, "id:https://example.com/2", false, "meh", time.Now()))

	got, err := s.store.Candidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("https://example.com/3", got[0].URL)
	s.Nil(got[0].Feedback)
	s.Nil(got[0].ImageURL)
	s.Nil(got[0].Author)
}

func (s *ArticleStoreSuite) TestRecordFeedback_NotFound() {
	err := s.store.RecordFeedback(s.ctx, "missing", true, "", time.Now())
	s.ErrorIs(err, domain.ErrArticleNotFound)
}

func (s *ArticleStoreSuite) TestRecordFeedback_Overwrites() {
	_, err := s.store.UpsertMany(s.ctx, []domain.Article{article("https://example.com/x")})
	s.Require().NoError(err)

	id := "id:https://example.com/x"
	s.Require().NoError(s.store.RecordFeedback(s.ctx, id, true, "first", time.Now()))
	s.Require().NoError(s.store.RecordFeedback(s.ctx, id, false, "second", time.Now()))

	count, err := s.store.FeedbackCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)

	feedback, err := s.store.AllFeedback(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(feedback, 1)
	s.False(feedback[0].IsHelpful)
	s.Equal("second", feedback[0].Reason)
}

func (s *ArticleStoreSuite) TestAllFeedback_NewestFirst() {
	_, err := s.store.UpsertMany(s.ctx, []domain.Article{
		article("https://example.com/old"),
		article("https://example.com/new"),
	})
	s.Require().NoError(err)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.RecordFeedback(s.ctx, "id:https://example.com/old", false, "old", base))
	s.Require().NoError(s.store.RecordFeedback(s.ctx, "id:https://example.com/new", true, "new", base.Add(1500*time.Millisecond)))

	feedback, err := s.store.AllFeedback(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(feedback, 2)
	s.Equal("new", feedback[0].Reason)
	s.Equal("old", feedback[1].Reason)

	count, err := s.store.FeedbackCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *ArticleStoreSuite) TestUpsertMany_ConcurrentMergesKeepEveryTag() {
	const url = "https://example.com/contended"
	const writers = 8

	var wg sync.WaitGroup
	counts := make([]int, writers)
	errs := make([]error, writers)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tag := domain.Category(fmt.Sprintf("T%d", i))
			counts[i], errs[i] = s.store.UpsertMany(s.ctx, []domain.Article{article(url, tag)})
		}()
	}
	wg.Wait()

	total := 0
	want := make([]domain.Category, 0, writers)
	for i := range writers {
		s.Require().NoError(errs[i])
		total += counts[i]
		want = append(want, domain.Category(fmt.Sprintf("T%d", i)))
	}
	s.Equal(1, total, "the url is new exactly once")

	got, err := s.store.Candidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.ElementsMatch(want, got[0].Tags)
}

func (s *ArticleStoreSuite) TestUnknownTagsRoundTrip() {
	_, err := s.store.UpsertMany(s.ctx, []domain.Article{article("https://example.com/go", "Go", domain.CategoryWeb)})
	s.Require().NoError(err)

	got, err := s.store.Candidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal([]domain.Category{"Go", domain.CategoryWeb}, got[0].Tags)
}

func (s *ArticleStoreSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)

	err := tm.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if _, err := s.store.UpsertMany(txCtx, []domain.Article{article("https://example.com/tx")}); err != nil {
			return err
		}
		return errors.New("abort")
	})
	s.Error(err)

	got, err := s.store.Candidates(s.ctx)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *ArticleStoreSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)

	err := tm.WithTransaction(s.ctx, func(txCtx context.Context) error {
		_, err := s.store.UpsertMany(txCtx, []domain.Article{article("https://example.com/tx")})
		return err
	})
	s.Require().NoError(err)

	got, err := s.store.Candidates(s.ctx)
	s.Require().NoError(err)
	s.Len(got, 1)
}
