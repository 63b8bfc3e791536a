// Package classifier expands an article's category set from keyword
// patterns found in its title and summary.
package classifier

import (
	"fmt"
	"regexp"
	"strings"

	"news_curator/internal/domain"
)

// Rule appends Category when Pattern matches the article text.
type Rule struct {
	Category domain.Category
	Pattern  *regexp.Regexp
}

// nonWord is anything but a Unicode word character. RE2's \b only knows
// ASCII, so "日本語Rust" would count as a whole word under it.
const nonWord = `[^\p{L}\p{M}\p{N}\p{Pc}]`

// wordPattern matches any of the alternatives as a whole word, case
// insensitively. Alternatives are regular expressions.
func wordPattern(alternatives ...string) string {
	return `(?i)(?:^|` + nonWord + `)(?:` + strings.Join(alternatives, "|") + `)(?:$|` + nonWord + `)`
}

var defaultRules = []Rule{
	{Category: domain.CategoryRust, Pattern: regexp.MustCompile(wordPattern("rust"))},
	{Category: domain.CategoryReact, Pattern: regexp.MustCompile(wordPattern("react"))},
	{Category: domain.CategoryAndroid, Pattern: regexp.MustCompile(wordPattern("android"))},
	{Category: domain.CategoryTauri, Pattern: regexp.MustCompile(wordPattern("tauri"))},
	{Category: domain.CategoryAI, Pattern: regexp.MustCompile(wordPattern("ai", "llm", "gpt", "generative"))},
	{Category: domain.CategoryTypeScript, Pattern: regexp.MustCompile(wordPattern("typescript"))},
	{Category: domain.CategoryKotlin, Pattern: regexp.MustCompile(wordPattern("kotlin"))},
}

type Classifier struct {
	rules []Rule
}

// New returns a classifier running the built-in rules followed by extra.
func New(extra ...Rule) *Classifier {
	rules := make([]Rule, 0, len(defaultRules)+len(extra))
	rules = append(rules, defaultRules...)
	rules = append(rules, extra...)
	return &Classifier{rules: rules}
}

// KeywordRule builds a case-insensitive, word-bounded rule matching any of
// the given keywords.
func KeywordRule(category domain.Category, keywords []string) (Rule, error) {
	if category == "" {
		return Rule{}, fmt.Errorf("rule without category")
	}
	if len(keywords) == 0 {
		return Rule{}, fmt.Errorf("rule %q has no keywords", category)
	}

	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = regexp.QuoteMeta(strings.TrimSpace(k))
	}

	re, err := regexp.Compile(wordPattern(quoted...))
	if err != nil {
		return Rule{}, fmt.Errorf("compile rule %q: %w", category, err)
	}
	return Rule{Category: category, Pattern: re}, nil
}

// Classify returns source followed by every matched category, without
// duplicates. A leading General is dropped once a specialized tag exists.
func (c *Classifier) Classify(title, summary string, source domain.Category) []domain.Category {
	tags := []domain.Category{source}
	text := title + " " + summary

	for _, r := range c.rules {
		if domain.ContainsCategory(tags, r.Category) {
			continue
		}
		if r.Pattern.MatchString(text) {
			tags = append(tags, r.Category)
		}
	}

	if len(tags) > 1 && tags[0] == domain.CategoryGeneral {
		tags = tags[1:]
	}
	return tags
}
