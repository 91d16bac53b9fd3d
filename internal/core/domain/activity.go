package domain

import "time"

// Activity is a provider-published activity entry with an optional image.
// ImagePath is a path relative to the application root ("images/<name>"),
// empty when no image was uploaded.
type Activity struct {
	ActivityID string    `json:"id"`
	Text       string    `json:"text"`
	Provider   string    `json:"provider"`
	ImagePath  string    `json:"imagePath"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ActivityFilter is the typed filter specification for activity listing.
type ActivityFilter struct {
	Provider string // case-insensitive contains match
	Sort     SortSpec
	Paging   PageSpec
}
