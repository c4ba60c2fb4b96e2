package dto

import "time"

// VideoDTO exposes the fields needed for API consumers
// Fields are flattened from models.Video and models.AISummary
// ID and ChannelID are hex strings to keep transport simple
// We intentionally hide internal processing fields like status flags.
type VideoDTO struct {
	ID             string    `json:"id"`
	ChannelID      string    `json:"channel_id"`
	ChannelName    string    `json:"channel_name"`
	Title          string    `json:"title"`
	Link           string    `json:"link"`
	PublishedAt    time.Time `json:"published_at"`
	PublishedAgo   string    `json:"published_ago" example:"3 days ago"`
	Duration       string    `json:"duration" example:"12:34"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	ViewCount      int64     `json:"view_count"`
	ViewCountLabel string    `json:"view_count_label" example:"1,234"`
	Categories     []string  `json:"categories"`
	Tags           []string  `json:"tags"`
	Summary        string    `json:"summary"`
}
