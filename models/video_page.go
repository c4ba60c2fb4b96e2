package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoPage stores the rendered watch-page html
// Collection: video_pages
type VideoPage struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
	VideoID         primitive.ObjectID `bson:"video_id" json:"video_id"`
	RawHTML         string             `bson:"raw_html" json:"raw_html"`
	FetchedAt       time.Time          `bson:"fetched_at" json:"fetched_at"`
	FetchDurationMs int64              `bson:"fetch_duration_ms" json:"fetch_duration_ms"`
	HTMLSizeBytes   int64              `bson:"html_size_bytes" json:"html_size_bytes"`
	ChannelName     string             `bson:"channel_name" json:"channel_name"`
	VideoTitle      string             `bson:"video_title" json:"video_title"`
}
