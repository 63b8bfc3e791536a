package feed

import (
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_curator/internal/domain"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func TestParse_RSS(t *testing.T) {
	articles, err := NewParser().Parse(readFixture(t, "rss.xml"), domain.CategoryWeb)
	require.NoError(t, err)
	require.Len(t, articles, 4)

	a := articles[0]
	assert.Equal(t, "guid-a", a.ID)
	assert.Equal(t, "Enclosure item", a.Title)
	assert.Equal(t, "https://example.com/a", a.URL)
	assert.Equal(t, "Hello & welcome", a.Summary)
	assert.Equal(t, "2006-01-02T15:04:05Z", a.PublishedAt)
	assert.Equal(t, []domain.Category{domain.CategoryWeb}, a.Tags)
	require.NotNil(t, a.ImageURL)
	assert.Equal(t, "https://example.com/a.jpg", *a.ImageURL)
	require.NotNil(t, a.Author)
	assert.Equal(t, "Alice", *a.Author)
	assert.Nil(t, a.Feedback)

	b := articles[1]
	assert.Equal(t, "https://example.com/b", b.ID, "id falls back to the link")
	require.NotNil(t, b.ImageURL)
	assert.Equal(t, "https://example.com/b.jpg", *b.ImageURL)
	require.NotNil(t, b.Author)
	assert.Equal(t, "Bob", *b.Author)
	assert.Empty(t, b.PublishedAt)

	c := articles[2]
	assert.Empty(t, c.ID)
	assert.Empty(t, c.URL)
	require.NotNil(t, c.ImageURL, "non-image enclosure is skipped in favour of inline <img>")
	assert.Equal(t, "https://example.com/inline.png", *c.ImageURL)
	assert.Equal(t, "Intro more", c.Summary)

	d := articles[3]
	require.NotNil(t, d.ImageURL)
	assert.Equal(t, "https://example.com/content.gif", *d.ImageURL)
}

func TestParse_Atom(t *testing.T) {
	articles, err := NewParser().Parse(readFixture(t, "atom.xml"), domain.CategoryGeneral)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	a := articles[0]
	assert.Equal(t, "urn:example:entry:1", a.ID)
	assert.Equal(t, "https://example.com/atom/1", a.URL)
	assert.Equal(t, "Short atom summary", a.Summary)
	assert.Equal(t, "2024-03-01T08:00:00Z", a.PublishedAt)
	require.NotNil(t, a.Author)
	assert.Equal(t, "Carol", *a.Author)
	assert.Nil(t, a.ImageURL)
}

func TestParse_Malformed(t *testing.T) {
	_, err := NewParser().Parse([]byte("this is not a feed"), domain.CategoryRust)

	assert.ErrorIs(t, err, ErrMalformedFeed)
}

func TestParse_SummaryTruncatedByCharacters(t *testing.T) {
	long := strings.Repeat("é", 300)
	doc := `<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>` +
		`<item><title>x</title><link>https://example.com/x</link><description>` + long +
		`</description></item></channel></rss>`

	articles, err := NewParser().Parse([]byte(doc), domain.CategoryRust)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	assert.Equal(t, summaryLimit, utf8.RuneCountInString(articles[0].Summary))
	assert.True(t, utf8.ValidString(articles[0].Summary))
}

func TestImageScanIsBounded(t *testing.T) {
	padding := strings.Repeat("x", scanLimit)
	doc := `<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>` +
		`<item><title>x</title><link>https://example.com/x</link><description><![CDATA[` + padding +
		`<img src="https://example.com/late.png">]]></description></item></channel></rss>`

	articles, err := NewParser().Parse([]byte(doc), domain.CategoryRust)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	assert.Nil(t, articles[0].ImageURL)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", truncate("", 3))
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "日本", truncate("日本語", 2))
}
