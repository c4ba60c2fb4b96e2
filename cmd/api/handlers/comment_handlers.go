package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clip-cast/cmd/api/dto"
	"clip-cast/cmd/api/services"
)

// ListVideoCommentsHandler godoc
// @Summary      List comments of a video
// @Description  List comments of a video, newest first, with pagination
// @Tags         comments
// @Param        id             path   string  true   "Video ObjectID"
// @Param        page           query  int     false  "Page number (1-based)"
// @Param        page_size      query  int     false  "Page size (<=100)"
// @Param        sibling_count  query  int     false  "Sibling count of the page window (0-4)"
// @Produce      json
// @Success      200  {object}  dto.PaginationCommentDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /videos/{id}/comments [get]
func ListVideoCommentsHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := bindPaging(c)
		resp, err := svc.ListByVideo(c.Request.Context(), services.ListCommentsInput{
			VideoID:      c.Param("id"),
			Page:         q.Page,
			PageSize:     q.PageSize,
			SiblingCount: q.SiblingCount,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// CreateVideoCommentHandler godoc
// @Summary      Create a comment on a video
// @Description  Store a new comment for a video
// @Tags         comments
// @Param        id       path  string                    true  "Video ObjectID"
// @Param        comment  body  dto.CreateCommentRequest  true  "Comment body"
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.CommentDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /videos/{id}/comments [post]
func CreateVideoCommentHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body"})
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		comment, err := svc.Create(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, comment)
	}
}
