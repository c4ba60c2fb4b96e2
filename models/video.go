package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusFlags represents processing progress of a video
//
//	enriched: 워치 페이지 렌더링/설명/썸네일/AI 요약 결과가 저장됨
type StatusFlags struct {
	Enriched        bool `bson:"enriched" json:"enriched"`
	ThumbnailParsed bool `bson:"thumbnail_parsed" json:"thumbnail_parsed"`
}

// Video represents a published video document
// Collection: videos
type Video struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
	Status          StatusFlags        `bson:"status" json:"status"`
	ViewCount       int64              `bson:"view_count" json:"view_count"`
	ChannelID       primitive.ObjectID `bson:"channel_id" json:"channel_id"`
	ChannelName     string             `bson:"channel_name" json:"channel_name"`
	Title           string             `bson:"title" json:"title"`
	Link            string             `bson:"link" json:"link"`
	PublishedAt     time.Time          `bson:"published_at" json:"published_at"`
	DurationSeconds int64              `bson:"duration_seconds" json:"duration_seconds"`
	ThumbnailURL    string             `bson:"thumbnail_url" json:"thumbnail_url"`
	Description     string             `bson:"description" json:"description"`
	AISummary       AISummary          `bson:"aisummary" json:"aisummary"`
}

// AISummary nested info in Video (denormalized snapshot)
// Stored under videos.aisummary
// Includes categories and tags arrays for indexing
type AISummary struct {
	Categories  []string  `bson:"categories" json:"categories"`
	Tags        []string  `bson:"tags" json:"tags"`
	Summary     string    `bson:"summary" json:"summary"`
	ModelName   string    `bson:"model_name" json:"model_name"`
	GeneratedAt time.Time `bson:"generated_at" json:"generated_at"`
}
