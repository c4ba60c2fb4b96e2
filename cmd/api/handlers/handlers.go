package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clip-cast/cmd/api/dto"
	"clip-cast/cmd/api/services"
)

// respondError maps service-layer errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid id"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
	}
}

// bindPaging binds the shared paging query params with lenient clamping.
func bindPaging(c *gin.Context) dto.PagingQuery {
	var q dto.PagingQuery
	// 바인딩 오류는 기본값으로 대체한다 (관대한 경계 처리).
	if err := c.ShouldBindQuery(&q); err != nil {
		q = dto.PagingQuery{}
	}
	q.SetDefaults()
	return q
}
