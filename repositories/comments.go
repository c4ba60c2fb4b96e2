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

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection("comments")}
}

// Insert stores a new comment and returns the generated ObjectID.
func (r *CommentRepository) Insert(ctx context.Context, c *models.Comment) (primitive.ObjectID, error) {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, mongo.ErrNilDocument
	}
	return id, nil
}

type ListCommentsOptions struct {
	Page     int
	PageSize int
	VideoID  primitive.ObjectID
}

// ListByVideo returns comments of a video with pagination,
// newest first with _id as a tiebreaker.
func (r *CommentRepository) ListByVideo(ctx context.Context, opt ListCommentsOptions) ([]models.Comment, int64, error) {
	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.PageSize <= 0 || opt.PageSize > 100 {
		opt.PageSize = 20
	}
	skip := int64((opt.Page - 1) * opt.PageSize)
	limit := int64(opt.PageSize)

	filter := bson.M{"video_id": opt.VideoID}
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Comment
	for cur.Next(ctx) {
		var c models.Comment
		if err := cur.Decode(&c); err != nil {
			return nil, 0, err
		}
		results = append(results, c)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// CountByVideo returns the number of comments of a video.
func (r *CommentRepository) CountByVideo(ctx context.Context, videoID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"video_id": videoID})
}

// DeleteByVideo removes all comments of a video.
func (r *CommentRepository) DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"video_id": videoID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
