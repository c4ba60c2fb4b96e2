package dto

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PagingQuery binds the common pagination query params.
// 범위를 벗어난 값은 오류 대신 기본값으로 보정한다 (관대한 경계 처리).
type PagingQuery struct {
	Page         int `form:"page,default=1"`
	PageSize     int `form:"page_size,default=20"`
	SiblingCount int `form:"sibling_count,default=1"`
}

// SetDefaults clamps out-of-range values to their defaults.
func (q *PagingQuery) SetDefaults() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 20
	}
	if q.SiblingCount < 0 {
		q.SiblingCount = 0
	}
	if q.SiblingCount > 4 {
		q.SiblingCount = 4
	}
}

// CreateCommentRequest is the body for posting a comment on a video.
type CreateCommentRequest struct {
	Author string `json:"author" validate:"required,min=1,max=64"`
	Body   string `json:"body" validate:"required,min=1,max=2000"`
}

func (r CreateCommentRequest) Validate() error {
	return validate.Struct(r)
}
