package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clip-cast/cmd/api/dto"
	"clip-cast/cmd/api/services"
)

// ListVideosHandler godoc
// @Summary      List videos
// @Description  List enriched videos with filters and pagination
// @Tags         videos
// @Param        page           query  int       false  "Page number (1-based)"
// @Param        page_size      query  int       false  "Page size (<=100)"
// @Param        sibling_count  query  int       false  "Sibling count of the page window (0-4)"
// @Param        categories     query  []string  false  "Categories (OR match)"
// @Param        tags           query  []string  false  "Tags (AND match)"
// @Param        channel_id     query  string    false  "Channel ID"
// @Param        channel_name   query  string    false  "Channel name"
// @Produce      json
// @Success      200  {object}  dto.PaginationVideoDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /videos [get]
func ListVideosHandler(svc *services.VideoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := bindPaging(c)
		in := services.ListVideosInput{
			Page:         q.Page,
			PageSize:     q.PageSize,
			SiblingCount: q.SiblingCount,
			Categories:   c.QueryArray("categories"),
			Tags:         c.QueryArray("tags"),
			ChannelID:    c.Query("channel_id"),
			ChannelName:  c.Query("channel_name"),
		}

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetVideoHandler godoc
// @Summary      Get video by id
// @Description  Get a single video by ObjectID
// @Tags         videos
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.VideoDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /videos/{id} [get]
func GetVideoHandler(svc *services.VideoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		video, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, video)
	}
}

// IncrementVideoViewCountHandler godoc
// @Summary      Increment video view count
// @Description  Increment the view_count of a video by 1
// @Tags         videos
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /videos/{id}/view [post]
func IncrementVideoViewCountHandler(svc *services.VideoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.IncrementViewCount(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "view count incremented successfully"})
	}
}
