package config

import "news_curator/internal/domain"

// DefaultFeeds is the developer reading list used when no feeds are
// configured.
func DefaultFeeds() []domain.FeedSource {
	return []domain.FeedSource{
		{URL: "https://blog.rust-lang.org/feed.xml", Category: domain.CategoryRust},
		{URL: "https://this-week-in-rust.org/rss.xml", Category: domain.CategoryRust},
		{URL: "https://feeds.feedburner.com/blogspot/hsDu", Category: domain.CategoryAndroid},
		{URL: "https://androidweekly.net/rss", Category: domain.CategoryAndroid},
		{URL: "https://tauri.app/blog/rss.xml", Category: domain.CategoryTauri},
		{URL: "https://devblogs.microsoft.com/typescript/feed/", Category: domain.CategoryTypeScript},
		{URL: "https://css-tricks.com/feed/", Category: domain.CategoryWeb},
		{URL: "https://www.smashingmagazine.com/feed/", Category: domain.CategoryWeb},
		{URL: "https://web.dev/feed.xml", Category: domain.CategoryWeb},
		{URL: "https://fettblog.eu/feed.xml", Category: domain.CategoryTypeScript},
		{URL: "https://levelup.gitconnected.com/feed", Category: domain.CategoryWeb},
		{URL: "https://2ality.com/feeds/posts.xml", Category: domain.CategoryTypeScript},
		{URL: "https://react.dev/feed.xml", Category: domain.CategoryReact},
		{URL: "https://overreacted.io/rss.xml", Category: domain.CategoryReact},
		{URL: "https://tkdodo.eu/blog/rss.xml", Category: domain.CategoryReact},
		{URL: "https://kentcdodds.com/blog/rss.xml", Category: domain.CategoryReact},
		{URL: "https://www.joshwcomeau.com/rss.xml", Category: domain.CategoryReact},
		{URL: "https://robinwieruch.de/index.xml", Category: domain.CategoryReact},
		{URL: "https://ui.dev/blog/rss", Category: domain.CategoryReact},
		{URL: "https://www.developerway.com/rss.xml", Category: domain.CategoryReact},
		{URL: "https://openai.com/blog/rss.xml", Category: domain.CategoryAI},
		{URL: "https://blogs.microsoft.com/ai/feed/", Category: domain.CategoryAI},
		{URL: "https://news.ycombinator.com/rss", Category: domain.CategoryGeneral},
		{URL: "https://dev.to/feed", Category: domain.CategoryGeneral},
	}
}
