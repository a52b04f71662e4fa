package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chizhinime/brand-pawa-sub000/internal/services"
)

type ChallengeHandler struct {
	challengeService  *services.ChallengeService
	enrollmentService *services.EnrollmentService
}

func NewChallengeHandler(challengeService *services.ChallengeService, enrollmentService *services.EnrollmentService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService, enrollmentService: enrollmentService}
}

type EnrollRequest struct {
	DurationID uint   `json:"duration_id" binding:"required" example:"1"`
	BrandType  string `json:"brand_type" binding:"omitempty,oneof=product service" example:"product"`
}

type CompleteTaskRequest struct {
	DayNumber int    `json:"day_number" binding:"required,min=1" example:"3"`
	Response  string `json:"response" example:"Posted the case study today."`
}

// ListChallenges godoc
// @Summary      List challenges
// @Description  Get the challenge catalog with available durations
// @Tags         challenges
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Challenge
// @Router       /api/v1/challenges [get]
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	challenges, err := h.challengeService.List()
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// GetChallenge godoc
// @Summary      Get a challenge
// @Description  Get one challenge with durations and their daily tasks
// @Tags         challenges
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Challenge slug"
// @Success      200 {object} models.Challenge
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/challenges/{slug} [get]
func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	challenge, err := h.challengeService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// Enroll godoc
// @Summary      Start a challenge
// @Description  Enroll the caller in a challenge duration; one non-terminal enrollment per challenge
// @Tags         challenges
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Challenge slug"
// @Param        request body EnrollRequest true "Duration and brand type"
// @Success      201 {object} models.ChallengeEnrollment
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/challenges/{slug}/enroll [post]
func (h *ChallengeHandler) Enroll(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	challenge, err := h.challengeService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	enrollment, err := h.enrollmentService.Start(userID, challenge.ID, req.DurationID, req.BrandType)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

// ListEnrollments godoc
// @Summary      List enrollments
// @Description  Get all of the caller's enrollments, newest first
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.ChallengeEnrollment
// @Router       /api/v1/enrollments [get]
func (h *ChallengeHandler) ListEnrollments(c *gin.Context) {
	userID := c.GetUint("user_id")

	enrollments, err := h.enrollmentService.List(userID)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

// GetEnrollment godoc
// @Summary      Get an enrollment
// @Description  Get one enrollment together with whether its streak is still alive today
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Enrollment public ID"
// @Success      200 {object} models.ChallengeEnrollment
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/enrollments/{id} [get]
func (h *ChallengeHandler) GetEnrollment(c *gin.Context) {
	userID := c.GetUint("user_id")

	enrollment, err := h.enrollmentService.Get(userID, c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"enrollment":   enrollment,
		"streak_alive": services.StreakAlive(enrollment, time.Now()),
	})
}

// CompleteTask godoc
// @Summary      Complete a day's task
// @Description  Mark one day done; completing the final day finishes the challenge and awards the bonus
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Enrollment public ID"
// @Param        request body CompleteTaskRequest true "Day and optional response"
// @Success      200 {object} models.ChallengeEnrollment
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/enrollments/{id}/complete [post]
func (h *ChallengeHandler) CompleteTask(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	enrollment, err := h.enrollmentService.CompleteTask(userID, c.Param("id"), req.DayNumber, req.Response)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// PauseEnrollment godoc
// @Summary      Pause an enrollment
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Enrollment public ID"
// @Success      200 {object} models.ChallengeEnrollment
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/enrollments/{id}/pause [post]
func (h *ChallengeHandler) PauseEnrollment(c *gin.Context) {
	userID := c.GetUint("user_id")

	enrollment, err := h.enrollmentService.Pause(userID, c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// ResumeEnrollment godoc
// @Summary      Resume a paused enrollment
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Enrollment public ID"
// @Success      200 {object} models.ChallengeEnrollment
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/enrollments/{id}/resume [post]
func (h *ChallengeHandler) ResumeEnrollment(c *gin.Context) {
	userID := c.GetUint("user_id")

	enrollment, err := h.enrollmentService.Resume(userID, c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// WeeklyBreakdown godoc
// @Summary      Weekly breakdown
// @Description  Completion counts and points per 7-day window of the enrollment
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Enrollment public ID"
// @Success      200 {array} services.WeekSummary
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/enrollments/{id}/weeks [get]
func (h *ChallengeHandler) WeeklyBreakdown(c *gin.Context) {
	userID := c.GetUint("user_id")

	enrollment, err := h.enrollmentService.Get(userID, c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.WeeklyBreakdown(enrollment, enrollment.Duration.Days))
}
