package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment stores a viewer comment on a video
// Collection: comments
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	VideoID   primitive.ObjectID `bson:"video_id" json:"video_id"`
	Author    string             `bson:"author" json:"author"`
	Body      string             `bson:"body" json:"body"`
	LikeCount int64              `bson:"like_count" json:"like_count"`
}
