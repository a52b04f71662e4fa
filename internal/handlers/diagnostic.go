package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chizhinime/brand-pawa-sub000/internal/services"
)

type DiagnosticHandler struct {
	diagnosticService *services.DiagnosticService
	sessionService    *services.DiagnosticSessionService
}

func NewDiagnosticHandler(diagnosticService *services.DiagnosticService, sessionService *services.DiagnosticSessionService) *DiagnosticHandler {
	return &DiagnosticHandler{diagnosticService: diagnosticService, sessionService: sessionService}
}

type AnswerRequest struct {
	QuestionID uint `json:"question_id" binding:"required" example:"3"`
	OptionID   uint `json:"option_id" binding:"required" example:"11"`
}

// ListDiagnostics godoc
// @Summary      List diagnostics
// @Description  Get the diagnostic catalog
// @Tags         diagnostics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Diagnostic
// @Router       /api/v1/diagnostics [get]
func (h *DiagnosticHandler) ListDiagnostics(c *gin.Context) {
	diagnostics, err := h.diagnosticService.List()
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, diagnostics)
}

// GetDiagnostic godoc
// @Summary      Get a diagnostic
// @Description  Get a diagnostic definition with its questions, options and pillars
// @Tags         diagnostics
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Diagnostic slug"
// @Success      200 {object} models.Diagnostic
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/diagnostics/{slug} [get]
func (h *DiagnosticHandler) GetDiagnostic(c *gin.Context) {
	diagnostic, err := h.diagnosticService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, diagnostic)
}

// Resume godoc
// @Summary      Resume a diagnostic session
// @Description  Load the caller's session state: fresh, in progress at the first unanswered question, or completed with the stored result
// @Tags         diagnostics
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Diagnostic slug"
// @Success      200 {object} services.SessionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/diagnostics/{slug}/session [get]
func (h *DiagnosticHandler) Resume(c *gin.Context) {
	userID := c.GetUint("user_id")

	diagnostic, err := h.diagnosticService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.sessionService.Resume(userID, diagnostic.ID)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// Answer godoc
// @Summary      Record an answer
// @Description  Save the selected option for a question; answering the final open question finalizes the attempt and returns the result
// @Tags         diagnostics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Diagnostic slug"
// @Param        request body AnswerRequest true "Selected option"
// @Success      200 {object} services.SessionState
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/diagnostics/{slug}/answers [post]
func (h *DiagnosticHandler) Answer(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	diagnostic, err := h.diagnosticService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.sessionService.RecordAnswer(userID, diagnostic.ID, req.QuestionID, req.OptionID)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetResult godoc
// @Summary      Get a diagnostic result
// @Description  Get the stored result for a completed diagnostic
// @Tags         diagnostics
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Diagnostic slug"
// @Success      200 {object} models.DiagnosticResult
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/diagnostics/{slug}/result [get]
func (h *DiagnosticHandler) GetResult(c *gin.Context) {
	userID := c.GetUint("user_id")

	diagnostic, err := h.diagnosticService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.sessionService.Result(userID, diagnostic.ID)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Retake godoc
// @Summary      Retake a diagnostic
// @Description  Delete the stored result and progress so the diagnostic can be taken again
// @Tags         diagnostics
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Diagnostic slug"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/diagnostics/{slug}/retake [post]
func (h *DiagnosticHandler) Retake(c *gin.Context) {
	userID := c.GetUint("user_id")

	diagnostic, err := h.diagnosticService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.sessionService.Retake(userID, diagnostic.ID); err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "diagnostic reset"})
}

// ImportDiagnostic godoc
// @Summary      Import a diagnostic definition
// @Description  Author a new diagnostic from a JSON definition
// @Tags         diagnostics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.ImportDefinition true "Definition"
// @Success      201 {object} models.Diagnostic
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/diagnostics/import [post]
func (h *DiagnosticHandler) ImportDiagnostic(c *gin.Context) {
	var def services.ImportDefinition
	if err := c.ShouldBindJSON(&def); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	diagnostic, err := h.diagnosticService.Import(def)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, diagnostic)
}
