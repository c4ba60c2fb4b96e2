package services

import (
	"context"

	"github.com/dustin/go-humanize"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clip-cast/cmd/api/dto"
	"clip-cast/models"
	"clip-cast/repositories"
)

// CommentService encapsulates comment listing/creation and DTO mapping.
type CommentService struct {
	comments *repositories.CommentRepository
	videos   *repositories.VideoRepository
}

func NewCommentService(comments *repositories.CommentRepository, videos *repositories.VideoRepository) *CommentService {
	return &CommentService{comments: comments, videos: videos}
}

type ListCommentsInput struct {
	VideoID      string // hex string
	Page         int
	PageSize     int
	SiblingCount int
}

func (s *CommentService) ListByVideo(ctx context.Context, in ListCommentsInput) (dto.Pagination[dto.CommentDTO], error) {
	videoOID, err := primitive.ObjectIDFromHex(in.VideoID)
	if err != nil {
		return dto.Pagination[dto.CommentDTO]{}, ErrInvalidID
	}

	comments, total, err := s.comments.ListByVideo(ctx, repositories.ListCommentsOptions{
		Page:     in.Page,
		PageSize: in.PageSize,
		VideoID:  videoOID,
	})
	if err != nil {
		return dto.Pagination[dto.CommentDTO]{}, err
	}

	out := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, mapComment(c))
	}
	return dto.NewPagination(out, total, in.Page, in.PageSize, in.SiblingCount)
}

// Create stores a comment after checking the target video exists.
func (s *CommentService) Create(ctx context.Context, videoHexID string, req dto.CreateCommentRequest) (*dto.CommentDTO, error) {
	videoOID, err := primitive.ObjectIDFromHex(videoHexID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if _, err := s.videos.FindByID(ctx, videoOID); err != nil {
		return nil, wrapNotFound(err)
	}

	comment := &models.Comment{
		VideoID: videoOID,
		Author:  req.Author,
		Body:    req.Body,
	}
	id, err := s.comments.Insert(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = id

	d := mapComment(*comment)
	return &d, nil
}

func mapComment(c models.Comment) dto.CommentDTO {
	return dto.CommentDTO{
		ID:         c.ID.Hex(),
		VideoID:    c.VideoID.Hex(),
		Author:     c.Author,
		Body:       c.Body,
		LikeCount:  c.LikeCount,
		CreatedAt:  c.CreatedAt,
		CreatedAgo: humanize.Time(c.CreatedAt),
	}
}
