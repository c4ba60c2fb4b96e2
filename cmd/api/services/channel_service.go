package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clip-cast/cmd/api/dto"
	"clip-cast/models"
	"clip-cast/repositories"
)

// ChannelService encapsulates channel listing and DTO mapping.
type ChannelService struct {
	channels *repositories.ChannelRepository
}

func NewChannelService(channels *repositories.ChannelRepository) *ChannelService {
	return &ChannelService{channels: channels}
}

type ListChannelsInput struct {
	Page         int
	PageSize     int
	SiblingCount int
}

func (s *ChannelService) List(ctx context.Context, in ListChannelsInput) (dto.Pagination[dto.ChannelDTO], error) {
	channels, total, err := s.channels.List(ctx, repositories.ListChannelsOptions{
		Page:     in.Page,
		PageSize: in.PageSize,
	})
	if err != nil {
		return dto.Pagination[dto.ChannelDTO]{}, err
	}

	out := make([]dto.ChannelDTO, 0, len(channels))
	for _, c := range channels {
		out = append(out, mapChannel(c))
	}
	return dto.NewPagination(out, total, in.Page, in.PageSize, in.SiblingCount)
}

// GetByID loads a channel by its ObjectID hex and returns a DTO
func (s *ChannelService) GetByID(ctx context.Context, hexID string) (*dto.ChannelDTO, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}
	c, err := s.channels.FindByID(ctx, oid)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	d := mapChannel(*c)
	return &d, nil
}

func mapChannel(c models.Channel) dto.ChannelDTO {
	return dto.ChannelDTO{
		ID:   c.ID.Hex(),
		Name: c.Name,
		URL:  c.URL,
	}
}
