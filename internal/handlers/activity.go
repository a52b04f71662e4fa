package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chizhinime/brand-pawa-sub000/internal/services"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// Feed godoc
// @Summary      Activity feed
// @Description  Get the caller's most recent ledger entries, newest first
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max entries (default 20)"
// @Success      200 {array} models.ActivityEvent
// @Router       /api/v1/activity [get]
func (h *ActivityHandler) Feed(c *gin.Context) {
	userID := c.GetUint("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	events, err := h.activityService.ListRecent(userID, limit)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// Points godoc
// @Summary      Point total
// @Description  Get the caller's running point total
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]int
// @Router       /api/v1/activity/points [get]
func (h *ActivityHandler) Points(c *gin.Context) {
	userID := c.GetUint("user_id")

	points, err := h.activityService.TotalPoints(userID)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_points": points})
}
