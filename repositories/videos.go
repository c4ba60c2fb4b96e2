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

type VideoRepository struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{col: db.Collection("videos")}
}

// IsExistByLink checks whether a video with the given link already exists.
func (r *VideoRepository) IsExistByLink(ctx context.Context, link string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"link": link})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert stores a new video document and returns the generated ObjectID.
func (r *VideoRepository) Insert(ctx context.Context, v *models.Video) (primitive.ObjectID, error) {
	now := time.Now()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, v)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, mongo.ErrNilDocument
	}
	return id, nil
}

// FindByID returns a video by its ObjectID
func (r *VideoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	var v models.Video
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

type ListVideosOptions struct {
	Page        int
	PageSize    int
	Categories  []string
	Tags        []string
	ChannelID   *primitive.ObjectID
	ChannelName string
	Enriched    *bool
}

// buildVideoFilter는 목록/집계 공통의 Mongo 필터를 구성한다.
func buildVideoFilter(opt ListVideosOptions) bson.M {
	filter := bson.M{}
	if len(opt.Categories) > 0 {
		ors := make([]bson.M, 0, len(opt.Categories))
		for _, c := range opt.Categories {
			ors = append(ors, bson.M{"aisummary.categories": bson.M{
				"$regex":   c,
				"$options": "i",
			}})
		}
		filter["$or"] = ors
	}
	if len(opt.Tags) > 0 {
		ands := make([]bson.M, 0, len(opt.Tags))
		for _, t := range opt.Tags {
			ands = append(ands, bson.M{"aisummary.tags": bson.M{
				"$regex":   t,
				"$options": "i",
			}})
		}
		if len(ands) == 1 {
			filter["aisummary.tags"] = ands[0]["aisummary.tags"]
		} else {
			filter["$and"] = ands
		}
	}
	if opt.ChannelID != nil {
		filter["channel_id"] = *opt.ChannelID
	}
	if opt.ChannelName != "" {
		filter["channel_name"] = bson.M{
			"$regex":   opt.ChannelName,
			"$options": "i",
		}
	}
	if opt.Enriched != nil {
		filter["status.enriched"] = *opt.Enriched
	}
	return filter
}

// List returns videos with pagination and optional filters,
// sorted by published_at desc with _id as a tiebreaker.
func (r *VideoRepository) List(ctx context.Context, opt ListVideosOptions) ([]models.Video, int64, error) {
	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.PageSize <= 0 || opt.PageSize > 100 {
		opt.PageSize = 20
	}
	skip := int64((opt.Page - 1) * opt.PageSize)
	limit := int64(opt.PageSize)

	filter := buildVideoFilter(opt)
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{
		{Key: "published_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Video
	for cur.Next(ctx) {
		var v models.Video
		if err := cur.Decode(&v); err != nil {
			return nil, 0, err
		}
		results = append(results, v)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// IncrementViewCount bumps view_count by one.
func (r *VideoRepository) IncrementViewCount(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"view_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	})
	return err
}

// UpdateEnrichment stores the processor output for a video in one update.
func (r *VideoRepository) UpdateEnrichment(ctx context.Context, id primitive.ObjectID, description, thumbnailURL string, summary models.AISummary) error {
	set := bson.M{
		"updated_at":      time.Now(),
		"description":     description,
		"aisummary":       summary,
		"status.enriched": true,
	}
	if thumbnailURL != "" {
		set["thumbnail_url"] = thumbnailURL
		set["status.thumbnail_parsed"] = true
	}
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// SetEnriched updates the enriched status flag of a video.
func (r *VideoRepository) SetEnriched(ctx context.Context, id primitive.ObjectID, enriched bool) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"status.enriched": enriched,
			"updated_at":      time.Now(),
		},
	})
	return err
}

// UpdateThumbnailURL updates thumbnail_url and marks the parsed flag.
func (r *VideoRepository) UpdateThumbnailURL(ctx context.Context, id primitive.ObjectID, thumbnailURL string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"thumbnail_url":           thumbnailURL,
			"status.thumbnail_parsed": true,
			"updated_at":              time.Now(),
		},
	})
	return err
}

// FindUnenriched는 생성된 지 grace 이상 지났지만 아직 보강되지 않은 영상을 찾는다.
func (r *VideoRepository) FindUnenriched(ctx context.Context, grace time.Duration, limit int64) ([]models.Video, error) {
	cutoff := time.Now().Add(-grace)
	filter := bson.M{
		"status.enriched": false,
		"created_at":      bson.M{"$lt": cutoff},
	}
	findOpts := options.Find().SetLimit(limit).SetSort(bson.D{
		{Key: "created_at", Value: 1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Video
	for cur.Next(ctx) {
		var v models.Video
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// FacetCount는 단일 필드 집계 결과 항목이다.
type FacetCount struct {
	Name  string `bson:"_id" json:"name"`
	Count int64  `bson:"count" json:"count"`
}

// ChannelFacetCount는 채널별 영상 수 집계 결과 항목이다.
type ChannelFacetCount struct {
	ChannelID   primitive.ObjectID `bson:"_id" json:"channel_id"`
	ChannelName string             `bson:"channel_name" json:"channel_name"`
	Count       int64              `bson:"count" json:"count"`
}

// CountByCategory aggregates video counts per AI summary category.
func (r *VideoRepository) CountByCategory(ctx context.Context, opt ListVideosOptions) ([]FacetCount, error) {
	return r.countByArrayField(ctx, "$aisummary.categories", opt)
}

// CountByTag aggregates video counts per AI summary tag.
func (r *VideoRepository) CountByTag(ctx context.Context, opt ListVideosOptions) ([]FacetCount, error) {
	return r.countByArrayField(ctx, "$aisummary.tags", opt)
}

func (r *VideoRepository) countByArrayField(ctx context.Context, field string, opt ListVideosOptions) ([]FacetCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: buildVideoFilter(opt)}},
		{{Key: "$unwind", Value: field}},
		{{Key: "$group", Value: bson.M{
			"_id":   field,
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []FacetCount
	for cur.Next(ctx) {
		var fc FacetCount
		if err := cur.Decode(&fc); err != nil {
			return nil, err
		}
		results = append(results, fc)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// CountByChannel aggregates video counts per channel.
func (r *VideoRepository) CountByChannel(ctx context.Context, opt ListVideosOptions) ([]ChannelFacetCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: buildVideoFilter(opt)}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$channel_id",
			"channel_name": bson.M{"$first": "$channel_name"},
			"count":        bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "channel_name", Value: 1},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []ChannelFacetCount
	for cur.Next(ctx) {
		var fc ChannelFacetCount
		if err := cur.Decode(&fc); err != nil {
			return nil, err
		}
		results = append(results, fc)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
