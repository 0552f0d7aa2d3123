package handler

import (
	"context"

	"github.com/CampusConnect/feed-service/internal/model"
	"github.com/CampusConnect/feed-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.GET("/author/:userID", h.postsGet)

			post := posts.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.postsGetByID)
				post.POST("/react", h.authMiddleware, h.postsReact)
				post.GET("/react", h.notRequiredAuthMiddleware, h.postsGetReactions)
				post.GET("/trails", h.trailsGet)
				post.POST("/trails", h.authMiddleware, h.trailsCreate)
				post.GET("/comment", h.commentsGet)
				post.POST("/comment", h.authMiddleware, h.commentsCreate)
			}
		}
	}

	return r
}

func (h *Handler) getUserDataFromClaims(ctx context.Context, claims jwt.MapClaims, accessToken string) (*model.CachedUser, error) {
	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, err
	}

	user, err := h.services.UserCache.CreateOrGet(ctx, id, accessToken)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.CachedUser {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.CachedUser)
	if !ok {
		return nil
	}

	return &user
}
