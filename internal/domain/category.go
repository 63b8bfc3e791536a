package domain

import "strings"

// Category is an open string enum. Values outside the known set are kept
// verbatim so stored tags survive a round-trip.
type Category string

const (
	CategoryRust       Category = "Rust"
	CategoryTauri      Category = "Tauri"
	CategoryReact      Category = "React"
	CategoryTypeScript Category = "TypeScript"
	CategoryAndroid    Category = "Android"
	CategoryKotlin     Category = "Kotlin"
	CategoryWeb        Category = "Web"
	CategoryAI         Category = "AI"
	CategoryGeneral    Category = "General"
)

var knownCategories = []Category{
	CategoryRust,
	CategoryTauri,
	CategoryReact,
	CategoryTypeScript,
	CategoryAndroid,
	CategoryKotlin,
	CategoryWeb,
	CategoryAI,
	CategoryGeneral,
}

// KnownCategories lists the built-in categories in display order.
func KnownCategories() []Category {
	out := make([]Category, len(knownCategories))
	copy(out, knownCategories)
	return out
}

func (c Category) IsKnown() bool {
	for _, k := range knownCategories {
		if c == k {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory maps case-insensitive input onto a known category. Unknown
// input is returned trimmed but otherwise untouched.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, k := range knownCategories {
		if strings.EqualFold(s, string(k)) {
			return k
		}
	}
	return Category(s)
}

func ContainsCategory(tags []Category, c Category) bool {
	for _, t := range tags {
		if t == c {
			return true
		}
	}
	return false
}

// MergeTags returns existing followed by every tag of incoming not already
// present. Neither input is modified.
func MergeTags(existing, incoming []Category) []Category {
	merged := make([]Category, 0, len(existing)+len(incoming))
	for _, t := range existing {
		if !ContainsCategory(merged, t) {
			merged = append(merged, t)
		}
	}
	for _, t := range incoming {
		if !ContainsCategory(merged, t) {
			merged = append(merged, t)
		}
	}
	return merged
}
