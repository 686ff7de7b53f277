package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	out := gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	}

	if user.BarbershopID != nil {
		var shop models.Barbershop
		if err := h.db.First(&shop, *user.BarbershopID).Error; err == nil {
			out["barbershop"] = gin.H{
				"id":      shop.ID,
				"name":    shop.Name,
				"slug":    shop.Slug,
				"phone":   shop.Phone,
				"address": shop.Address,
			}
		}
	}

	c.JSON(http.StatusOK, out)
}
