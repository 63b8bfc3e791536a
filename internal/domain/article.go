package domain

import (
	"errors"
	"time"
)

var ErrArticleNotFound = errors.New("article not found")

type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	URL         string     `json:"url"`
	Tags        []Category `json:"tags"`
	PublishedAt string     `json:"published_at"` // RFC 3339 UTC when the feed date parses
	ImageURL    *string    `json:"image_url,omitempty"`
	Author      *string    `json:"author,omitempty"`
	Feedback    *Feedback  `json:"feedback,omitempty"`
}

// Judged reports whether the article already carries user feedback.
func (a *Article) Judged() bool {
	return a.Feedback != nil
}

type Feedback struct {
	IsHelpful bool      `json:"is_helpful"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedSource struct {
	URL      string   `yaml:"url"`
	Category Category `yaml:"category"`
}

// UserPersona is the free-text taste summary derived from feedback.
type UserPersona struct {
	Description string    `json:"description"`
	LastUpdated time.Time `json:"last_updated"`
}

type UserPreferences struct {
	InterestedTags []Category `json:"interested_tags"`
}

// Clone returns a copy that shares no backing storage with p.
func (p UserPreferences) Clone() UserPreferences {
	tags := make([]Category, len(p.InterestedTags))
	copy(tags, p.InterestedTags)
	return UserPreferences{InterestedTags: tags}
}
