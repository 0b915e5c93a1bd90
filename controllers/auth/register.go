package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/middleware"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	err := database.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "An account with this email already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	user := models.User{
		Email:       email,
		FullName:    strings.TrimSpace(req.FullName),
		Password:    string(hashed),
		CurrentTier: "Starter",
		Status:      "Active",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		// unique index race on email
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "An account with this email already exists"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, "user", 15*time.Minute)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Account created, but login failed. Please log in."})
		return
	}
	refreshJTI, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Account created, but login failed. Please log in."})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Account created",
		Data: map[string]interface{}{
			"access_token":  accessToken,
			"refresh_token": refreshJTI,
			"user": map[string]interface{}{
				"id":           user.ID,
				"email":        user.Email,
				"full_name":    user.FullName,
				"total_points": user.TotalPointsEarned,
				"current_tier": user.CurrentTier,
			},
		},
	})
}
