package feed

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"news_curator/internal/domain"
)

const (
	summaryLimit = 250
	// Bodies are scanned for inline images only up to this many characters.
	scanLimit = 5000
)

var ErrMalformedFeed = errors.New("malformed feed")

var imgSrc = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)

// Parser turns a raw RSS or Atom document into article candidates.
type Parser struct {
	policy *bluemonday.Policy
}

func NewParser() *Parser {
	return &Parser{policy: bluemonday.StrictPolicy()}
}

// Parse returns one article per feed item, each tagged with source only.
func (p *Parser) Parse(data []byte, source domain.Category) ([]domain.Article, error) {
	// gofeed parsers keep per-document state, so one is built per call.
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}

	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		articles = append(articles, p.transform(item, source))
	}
	return articles, nil
}

func (p *Parser) transform(item *gofeed.Item, source domain.Category) domain.Article {
	return domain.Article{
		ID:          itemID(item),
		Title:       strings.TrimSpace(item.Title),
		Summary:     truncate(p.plainText(item.Description), summaryLimit),
		URL:         strings.TrimSpace(item.Link),
		Tags:        []domain.Category{source},
		PublishedAt: publishedAt(item),
		ImageURL:    imageURL(item),
		Author:      author(item),
	}
}

func itemID(item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	return item.Link
}

func publishedAt(item *gofeed.Item) string {
	switch {
	case item.PublishedParsed != nil:
		return item.PublishedParsed.UTC().Format(time.RFC3339)
	case item.Published != "":
		return item.Published
	case item.UpdatedParsed != nil:
		return item.UpdatedParsed.UTC().Format(time.RFC3339)
	default:
		return item.Updated
	}
}

// imageURL resolves, in order: an image enclosure, the first media:content
// url, an <img> inside the description or content body.
func imageURL(item *gofeed.Item) *string {
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image") && enc.URL != "" {
			return ptr(enc.URL)
		}
	}

	if media, ok := item.Extensions["media"]; ok {
		if contents := media["content"]; len(contents) > 0 {
			if u := contents[0].Attrs["url"]; u != "" {
				return ptr(u)
			}
		}
	}

	for _, body := range []string{item.Description, item.Content} {
		if m := imgSrc.FindStringSubmatch(truncate(body, scanLimit)); m != nil {
			return ptr(m[1])
		}
	}

	return nil
}

func author(item *gofeed.Item) *string {
	if item.Author != nil && item.Author.Name != "" {
		return ptr(item.Author.Name)
	}
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		return ptr(item.DublinCoreExt.Creator[0])
	}
	return nil
}

func (p *Parser) plainText(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(p.policy.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

// truncate cuts s to at most n characters, not bytes.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func ptr(s string) *string {
	return &s
}
