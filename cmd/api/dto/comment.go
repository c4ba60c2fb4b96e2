package dto

import "time"

// CommentDTO exposes comment fields to API consumers
// id and video_id are hex strings
type CommentDTO struct {
	ID         string    `json:"id"`
	VideoID    string    `json:"video_id"`
	Author     string    `json:"author"`
	Body       string    `json:"body"`
	LikeCount  int64     `json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedAgo string    `json:"created_ago" example:"2 hours ago"`
}
