package handler

import (
	"os"
	"strings"

	"github.com/CampusConnect/feed-service/pkg/utils"
	"github.com/gin-gonic/gin"
)

func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.Next()
		return
	}

	accessToken := strings.Split(header, " ")[1]
	if accessToken == "" {
		c.Next()
		return
	}

	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		c.Next()
		return
	}

	user, err := h.getUserDataFromClaims(c.Request.Context(), claims, accessToken)
	if err != nil {
		c.Next()
		return
	}

	c.Set("user", *user)

	c.Next()
}
