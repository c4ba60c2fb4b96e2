package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clip-cast/cmd/api/services"
)

// GetCategoryFiltersHandler godoc
// @Summary      Category filter counts
// @Description  Video counts per AI summary category, optionally narrowed by channel/tags
// @Tags         filters
// @Param        channel_id  query  string    false  "Channel ID"
// @Param        tags        query  []string  false  "Tags"
// @Produce      json
// @Success      200  {object}  dto.CategoryFilterDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /filters/categories [get]
func GetCategoryFiltersHandler(svc *services.FilterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.GetCategoryFilters(c.Request.Context(), c.Query("channel_id"), c.QueryArray("tags"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetTagFiltersHandler godoc
// @Summary      Tag filter counts
// @Description  Video counts per AI summary tag, optionally narrowed by channel/categories
// @Tags         filters
// @Param        channel_id  query  string    false  "Channel ID"
// @Param        categories  query  []string  false  "Categories"
// @Produce      json
// @Success      200  {object}  dto.TagFilterDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /filters/tags [get]
func GetTagFiltersHandler(svc *services.FilterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.GetTagFilters(c.Request.Context(), c.Query("channel_id"), c.QueryArray("categories"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetChannelFiltersHandler godoc
// @Summary      Channel filter counts
// @Description  Video counts per channel, optionally narrowed by categories/tags
// @Tags         filters
// @Param        categories  query  []string  false  "Categories"
// @Param        tags        query  []string  false  "Tags"
// @Produce      json
// @Success      200  {object}  dto.ChannelFilterDTO
// @Router       /filters/channels [get]
func GetChannelFiltersHandler(svc *services.FilterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.GetChannelFilters(c.Request.Context(), c.QueryArray("categories"), c.QueryArray("tags"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
