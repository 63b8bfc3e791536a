package service

import (
	"sort"

	"news_curator/internal/domain"
	"news_curator/internal/scoring"
)

// DefaultMinScore is the score at or below which an article is never shown.
const DefaultMinScore = -10

// Rank scores articles against interests, drops everything at or below
// DefaultMinScore and orders the rest by score, then by publication date,
// newest first. Ties keep their input order.
func Rank(articles []domain.Article, interests []domain.Category) []domain.Article {
	return rank(articles, interests, DefaultMinScore)
}

func rank(articles []domain.Article, interests []domain.Category, minScore int) []domain.Article {
	type scored struct {
		article domain.Article
		score   int
	}

	kept := make([]scored, 0, len(articles))
	for i := range articles {
		score := scoring.Score(&articles[i], interests)
		if score <= minScore {
			continue
		}
		kept = append(kept, scored{article: articles[i], score: score})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].score != kept[j].score {
			return kept[i].score > kept[j].score
		}
		return kept[i].article.PublishedAt > kept[j].article.PublishedAt
	})

	out := make([]domain.Article, len(kept))
	for i := range kept {
		out[i] = kept[i].article
	}
	return out
}
