package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/CampusConnect/feed-service/internal/dto"
	"github.com/CampusConnect/feed-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) postsReact(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.ReactRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	state, err := h.services.Reaction.React(c.Request.Context(), int64(postID), user.ID, input.ReactionType)
	if err != nil {
		switch err {
		case service.ErrInvalidReactionKind:
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		case service.ErrPostNotFound:
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *Handler) postsGetReactions(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var viewerID *uuid.UUID
	if user != nil {
		viewerID = &user.ID
	}

	state, err := h.services.Reaction.Get(c.Request.Context(), int64(postID), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, state)
}
