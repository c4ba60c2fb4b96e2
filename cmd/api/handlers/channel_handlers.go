package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clip-cast/cmd/api/services"
)

// ListChannelsHandler godoc
// @Summary      List channels
// @Description  List channels with simple pagination
// @Tags         channels
// @Param        page           query  int  false  "Page number (1-based)"
// @Param        page_size      query  int  false  "Page size (<=100)"
// @Param        sibling_count  query  int  false  "Sibling count of the page window (0-4)"
// @Produce      json
// @Success      200  {object}  dto.PaginationChannelDTO
// @Router       /channels [get]
func ListChannelsHandler(svc *services.ChannelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := bindPaging(c)
		resp, err := svc.List(c.Request.Context(), services.ListChannelsInput{
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

// GetChannelHandler godoc
// @Summary      Get channel by id
// @Description  Get a single channel by ObjectID
// @Tags         channels
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.ChannelDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /channels/{id} [get]
func GetChannelHandler(svc *services.ChannelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		channel, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, channel)
	}
}
