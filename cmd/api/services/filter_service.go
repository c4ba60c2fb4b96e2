package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clip-cast/cmd/api/dto"
	"clip-cast/repositories"
)

// FilterService handles filter-related business logic
type FilterService struct {
	videos *repositories.VideoRepository
}

// NewFilterService creates a new FilterService instance
func NewFilterService(videos *repositories.VideoRepository) *FilterService {
	return &FilterService{videos: videos}
}

func facetOptions(channelID string, categories, tags []string) (repositories.ListVideosOptions, error) {
	opt := repositories.ListVideosOptions{
		Categories: categories,
		Tags:       tags,
	}
	if channelID != "" {
		oid, err := primitive.ObjectIDFromHex(channelID)
		if err != nil {
			return opt, ErrInvalidID
		}
		opt.ChannelID = &oid
	}
	return opt, nil
}

// GetCategoryFilters retrieves category filter statistics
func (s *FilterService) GetCategoryFilters(ctx context.Context, channelID string, tags []string) (dto.CategoryFilterDTO, error) {
	opt, err := facetOptions(channelID, nil, tags)
	if err != nil {
		return dto.CategoryFilterDTO{}, err
	}
	counts, err := s.videos.CountByCategory(ctx, opt)
	if err != nil {
		return dto.CategoryFilterDTO{}, err
	}

	items := make([]dto.FilterItem, len(counts))
	for i, fc := range counts {
		items[i] = dto.FilterItem{
			Name:  fc.Name,
			Count: fc.Count,
		}
	}
	return dto.CategoryFilterDTO{Items: items}, nil
}

// GetTagFilters retrieves tag filter statistics
func (s *FilterService) GetTagFilters(ctx context.Context, channelID string, categories []string) (dto.TagFilterDTO, error) {
	opt, err := facetOptions(channelID, categories, nil)
	if err != nil {
		return dto.TagFilterDTO{}, err
	}
	counts, err := s.videos.CountByTag(ctx, opt)
	if err != nil {
		return dto.TagFilterDTO{}, err
	}

	items := make([]dto.FilterItem, len(counts))
	for i, fc := range counts {
		items[i] = dto.FilterItem{
			Name:  fc.Name,
			Count: fc.Count,
		}
	}
	return dto.TagFilterDTO{Items: items}, nil
}

// GetChannelFilters retrieves channel filter statistics
func (s *FilterService) GetChannelFilters(ctx context.Context, categories []string, tags []string) (dto.ChannelFilterDTO, error) {
	opt, err := facetOptions("", categories, tags)
	if err != nil {
		return dto.ChannelFilterDTO{}, err
	}
	counts, err := s.videos.CountByChannel(ctx, opt)
	if err != nil {
		return dto.ChannelFilterDTO{}, err
	}

	items := make([]dto.ChannelFilterItem, len(counts))
	for i, fc := range counts {
		items[i] = dto.ChannelFilterItem{
			ID:    fc.ChannelID.Hex(),
			Name:  fc.ChannelName,
			Count: fc.Count,
		}
	}
	return dto.ChannelFilterDTO{Items: items}, nil
}
