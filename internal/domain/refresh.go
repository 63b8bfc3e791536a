package domain

import "time"

// RefreshStats holds statistics about one refresh run.
type RefreshStats struct {
	Feeds       int           `json:"feeds"`
	FeedsFailed int           `json:"feeds_failed"`
	Fetched     int           `json:"fetched"`
	Skipped     int           `json:"skipped"`
	New         int           `json:"new"`
	Duration    time.Duration `json:"duration_ns"`
}
