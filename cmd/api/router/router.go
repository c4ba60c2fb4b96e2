package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"clip-cast/cmd/api/handlers"
	"clip-cast/cmd/api/middleware"
	"clip-cast/cmd/api/services"
	"clip-cast/db"
	_ "clip-cast/docs"
	"clip-cast/repositories"
)

func New() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		database := db.Database()
		videoRepo := repositories.NewVideoRepository(database)
		channelRepo := repositories.NewChannelRepository(database)
		commentRepo := repositories.NewCommentRepository(database)

		videosSvc := services.NewVideoService(videoRepo)
		api.GET("/videos", handlers.ListVideosHandler(videosSvc))
		api.GET("/videos/:id", handlers.GetVideoHandler(videosSvc))
		api.POST("/videos/:id/view", handlers.IncrementVideoViewCountHandler(videosSvc))

		commentsSvc := services.NewCommentService(commentRepo, videoRepo)
		api.GET("/videos/:id/comments", handlers.ListVideoCommentsHandler(commentsSvc))
		api.POST("/videos/:id/comments", handlers.CreateVideoCommentHandler(commentsSvc))

		channelsSvc := services.NewChannelService(channelRepo)
		api.GET("/channels", handlers.ListChannelsHandler(channelsSvc))
		api.GET("/channels/:id", handlers.GetChannelHandler(channelsSvc))

		filtersSvc := services.NewFilterService(videoRepo)
		api.GET("/filters/categories", handlers.GetCategoryFiltersHandler(filtersSvc))
		api.GET("/filters/tags", handlers.GetTagFiltersHandler(filtersSvc))
		api.GET("/filters/channels", handlers.GetChannelFiltersHandler(filtersSvc))
	}

	return r
}
