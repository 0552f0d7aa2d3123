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

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), user.ID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), int64(postID))
	if err != nil {
		if err == service.ErrPostNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}

		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	postDto := dto.GetPost{
		Post: *post,
	}

	if user != nil {
		reactions, err := h.services.Reaction.Get(c.Request.Context(), post.Post.ID, &user.ID)
		if err == nil {
			postDto.UserReaction = reactions.UserReaction
		}
	}

	c.JSON(http.StatusOK, postDto)
}

func (h *Handler) postsGet(c *gin.Context) {
	limit, err0 := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, err1 := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err0 != nil || err1 != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errLimitAndOffsetMustBeInt.Error()))
		return
	}

	userIDString := strings.TrimSpace(c.Param("userID"))
	userID, err := uuid.Parse(userIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	posts, err := h.services.Post.FindAuthorPosts(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, posts)
}
