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

type ChannelRepository struct {
	col *mongo.Collection
}

func NewChannelRepository(db *mongo.Database) *ChannelRepository {
	return &ChannelRepository{col: db.Collection("channels")}
}

// UpsertByFeedURL upserts a channel document identified by its feed_url.
func (r *ChannelRepository) UpsertByFeedURL(ctx context.Context, c *models.Channel) (*mongo.UpdateResult, error) {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	filter := bson.M{"feed_url": c.FeedURL}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": c.CreatedAt,
		},
		"$set": bson.M{
			"updated_at":   c.UpdatedAt,
			"name":         c.Name,
			"url":          c.URL,
			"feed_url":     c.FeedURL,
			"channel_type": c.ChannelType,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

// GetByFeedURL finds a channel by its feed_url.
func (r *ChannelRepository) GetByFeedURL(ctx context.Context, feedURL string) (*models.Channel, error) {
	var c models.Channel
	if err := r.col.FindOne(ctx, bson.M{"feed_url": feedURL}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByID returns a channel by its ObjectID
func (r *ChannelRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Channel, error) {
	var c models.Channel
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

type ListChannelsOptions struct {
	Page     int
	PageSize int
}

// List returns channels with pagination, sorted by name
func (r *ChannelRepository) List(ctx context.Context, opt ListChannelsOptions) ([]models.Channel, int64, error) {
	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.PageSize <= 0 || opt.PageSize > 100 {
		opt.PageSize = 20
	}
	skip := int64((opt.Page - 1) * opt.PageSize)
	limit := int64(opt.PageSize)

	filter := bson.M{}
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{
		{Key: "name", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Channel
	for cur.Next(ctx) {
		var c models.Channel
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
