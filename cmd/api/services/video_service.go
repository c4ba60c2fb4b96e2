package services

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clip-cast/cmd/api/dto"
	"clip-cast/models"
	"clip-cast/repositories"
)

// VideoService encapsulates business logic for videos and DTO mapping.
type VideoService struct {
	videos *repositories.VideoRepository
}

func NewVideoService(videos *repositories.VideoRepository) *VideoService {
	return &VideoService{videos: videos}
}

type ListVideosInput struct {
	Page         int
	PageSize     int
	SiblingCount int
	Categories   []string
	Tags         []string
	ChannelID    string // hex string; optional
	ChannelName  string // optional; case-insensitive match
}

func (s *VideoService) List(ctx context.Context, in ListVideosInput) (dto.Pagination[dto.VideoDTO], error) {
	opt := repositories.ListVideosOptions{
		Page:        in.Page,
		PageSize:    in.PageSize,
		Categories:  in.Categories,
		Tags:        in.Tags,
		ChannelName: in.ChannelName,
	}
	if in.ChannelID != "" {
		oid, err := primitive.ObjectIDFromHex(in.ChannelID)
		if err != nil {
			return dto.Pagination[dto.VideoDTO]{}, ErrInvalidID
		}
		opt.ChannelID = &oid
	}

	videos, total, err := s.videos.List(ctx, opt)
	if err != nil {
		return dto.Pagination[dto.VideoDTO]{}, err
	}

	out := make([]dto.VideoDTO, 0, len(videos))
	for _, v := range videos {
		out = append(out, mapVideo(v))
	}
	return dto.NewPagination(out, total, in.Page, in.PageSize, in.SiblingCount)
}

// GetByID loads a video by its ObjectID hex and returns a DTO
func (s *VideoService) GetByID(ctx context.Context, hexID string) (*dto.VideoDTO, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}
	v, err := s.videos.FindByID(ctx, oid)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	d := mapVideo(*v)
	return &d, nil
}

// IncrementViewCount increments the view_count of a video by its ObjectID hex
func (s *VideoService) IncrementViewCount(ctx context.Context, hexID string) error {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return ErrInvalidID
	}
	if _, err := s.videos.FindByID(ctx, oid); err != nil {
		return wrapNotFound(err)
	}
	return s.videos.IncrementViewCount(ctx, oid)
}

// mapVideo converts models.Video into the public VideoDTO.
func mapVideo(v models.Video) dto.VideoDTO {
	return dto.VideoDTO{
		ID:             v.ID.Hex(),
		ChannelID:      v.ChannelID.Hex(),
		ChannelName:    v.ChannelName,
		Title:          v.Title,
		Link:           v.Link,
		PublishedAt:    v.PublishedAt,
		PublishedAgo:   humanize.Time(v.PublishedAt),
		Duration:       FormatDuration(v.DurationSeconds),
		ThumbnailURL:   v.ThumbnailURL,
		ViewCount:      v.ViewCount,
		ViewCountLabel: humanize.Comma(v.ViewCount),
		Categories:     v.AISummary.Categories,
		Tags:           v.AISummary.Tags,
		Summary:        v.AISummary.Summary,
	}
}

// FormatDuration renders a duration in seconds as m:ss or h:mm:ss.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
