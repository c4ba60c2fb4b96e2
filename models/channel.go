package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Channel represents a video channel source
// Collection: channels
type Channel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	Name        string             `bson:"name" json:"name"`
	URL         string             `bson:"url" json:"url"`
	FeedURL     string             `bson:"feed_url" json:"feed_url"`
	ChannelType string             `bson:"channel_type" json:"channel_type"`
}
