package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clip-cast/models"
)

type VideoPageRepository struct {
	col *mongo.Collection
}

func NewVideoPageRepository(db *mongo.Database) *VideoPageRepository {
	return &VideoPageRepository{col: db.Collection("video_pages")}
}

// UpsertByVideo upserts the rendered page snapshot of a video.
func (r *VideoPageRepository) UpsertByVideo(ctx context.Context, p *models.VideoPage) (*mongo.UpdateResult, error) {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	filter := bson.M{"video_id": p.VideoID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": p.CreatedAt,
		},
		"$set": bson.M{
			"updated_at":        p.UpdatedAt,
			"video_id":          p.VideoID,
			"channel_name":      p.ChannelName,
			"video_title":       p.VideoTitle,
			"raw_html":          p.RawHTML,
			"fetched_at":        p.FetchedAt,
			"fetch_duration_ms": p.FetchDurationMs,
			"html_size_bytes":   p.HTMLSizeBytes,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

// FindByVideoID returns the stored page snapshot of a video.
func (r *VideoPageRepository) FindByVideoID(ctx context.Context, videoID primitive.ObjectID) (*models.VideoPage, error) {
	var p models.VideoPage
	if err := r.col.FindOne(ctx, bson.M{"video_id": videoID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// IsExistByVideoID checks whether a page snapshot exists for a video.
func (r *VideoPageRepository) IsExistByVideoID(ctx context.Context, videoID primitive.ObjectID) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"video_id": videoID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
