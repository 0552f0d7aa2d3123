package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/CampusConnect/feed-service/internal/dto"
	"github.com/CampusConnect/feed-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsGet(c *gin.Context) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	limit, err0 := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, err1 := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err0 != nil || err1 != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errLimitAndOffsetMustBeInt.Error()))
		return
	}

	comments, err := h.services.Comment.FindPostComments(c.Request.Context(), int64(postID), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.GetCommentsResponse{Comments: comments})
}

func (h *Handler) commentsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdComment, err := h.services.Comment.Create(c.Request.Context(), int64(postID), user.ID, input)
	if err != nil {
		switch err {
		case service.ErrEmptyContent, service.ErrContentTooLong:
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		case service.ErrPostNotFound:
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateCommentResponse{Comment: *createdComment})
}
