// Package scoring computes the deterministic relevance score of an article.
package scoring

import (
	"strings"

	"news_curator/internal/domain"
)

const (
	ExplicitInterest = 50
	HighImpact       = 10
	MediumImpact     = 3
	Negative         = -20
	TagBonusHigh     = 5
	TagBonusLow      = 2
	JudgedPenalty    = -1000
)

var highImpactKeywords = []string{
	"rust",
	"tauri",
	"react",
	"typescript",
	"javascript",
	"android",
	"kotlin",
	"webassembly",
	"wasm",
	"docker",
	"kubernetes",
	"llvm",
	"compiler",
}

var mediumImpactKeywords = []string{
	"code",
	"programming",
	"developer",
	"api",
	"frontend",
	"backend",
	"database",
	"algorithm",
	"git",
	"linux",
	"windows",
	"macos",
	"design pattern",
	"refactoring",
}

var negativeKeywords = []string{
	"stock",
	"market",
	"buffett",
	"berkshire",
	"invest",
	"politics",
	"crime",
	"murder",
	"sport",
	"celebrity",
	"gossip",
	"bitcoin",
	"crypto",
	"blockchain",
}

var highValueTags = []domain.Category{
	domain.CategoryRust,
	domain.CategoryTauri,
	domain.CategoryReact,
	domain.CategoryAndroid,
}

// Score returns the relevance of article for a user with the given explicit
// interests. Keywords are substring-matched against the lowercased title and
// summary separately; a keyword found in either field counts once.
func Score(article *domain.Article, interests []domain.Category) int {
	title := strings.ToLower(article.Title)
	summary := strings.ToLower(article.Summary)

	score := keywordScore(title, summary, highImpactKeywords, HighImpact)
	score += keywordScore(title, summary, mediumImpactKeywords, MediumImpact)
	score += keywordScore(title, summary, negativeKeywords, Negative)

	for _, tag := range article.Tags {
		if domain.ContainsCategory(interests, tag) {
			score += ExplicitInterest
		}
		score += tagBonus(tag)
	}

	if article.Judged() {
		score += JudgedPenalty
	}
	return score
}

func keywordScore(title, summary string, keywords []string, weight int) int {
	total := 0
	for _, k := range keywords {
		if strings.Contains(title, k) || strings.Contains(summary, k) {
			total += weight
		}
	}
	return total
}

func tagBonus(tag domain.Category) int {
	switch {
	case tag == domain.CategoryGeneral:
		return 0
	case domain.ContainsCategory(highValueTags, tag):
		return TagBonusHigh
	default:
		return TagBonusLow
	}
}
