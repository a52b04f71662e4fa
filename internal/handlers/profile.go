package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chizhinime/brand-pawa-sub000/internal/models"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"max=100" example:"Ada"`
	BrandName   string `json:"brand_name" binding:"max=100" example:"Acme Candles"`
	BrandType   string `json:"brand_type" binding:"omitempty,oneof=product service" example:"product"`
}

// GetProfile godoc
// @Summary      Get profile
// @Description  Get the authenticated user's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.User
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Update display name, brand name and brand type
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateProfileRequest true "Profile fields"
// @Success      200 {object} models.User
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		return
	}

	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}
	if req.BrandName != "" {
		user.BrandName = req.BrandName
	}
	if req.BrandType != "" {
		user.BrandType = req.BrandType
	}
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
