package admins

import (
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/middleware"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var admin models.Admin
	if err := database.DB.Where("username = ?", strings.TrimSpace(req.Username)).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid username or password"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	if !admin.IsActive {
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Account disabled"})
		return
	}

	if !admin.ValidatePassword(req.Password) {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid username or password"})
		return
	}

	token, err := utils.GenerateAccessToken(uint(admin.ID), "admin", 8*time.Hour)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Login failed"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Login successful",
		Data: map[string]interface{}{
			"access_token": token,
			"admin": map[string]interface{}{
				"id":       admin.ID,
				"username": admin.Username,
				"name":     admin.Name,
			},
		},
	})
}
