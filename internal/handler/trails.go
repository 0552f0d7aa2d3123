package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/CampusConnect/feed-service/internal/dto"
	"github.com/CampusConnect/feed-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) trailsGet(c *gin.Context) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	trails, err := h.services.Trail.FindPostTrails(c.Request.Context(), int64(postID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.GetTrailsResponse{Trails: trails})
}

func (h *Handler) trailsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.CreateTrailRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdTrail, err := h.services.Trail.Create(c.Request.Context(), int64(postID), user.ID, input)
	if err != nil {
		switch err {
		case service.ErrEmptyContent:
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		case service.ErrPostNotFound:
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTrailResponse{Trail: *createdTrail})
}
