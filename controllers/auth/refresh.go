package auth

import (
	"net/http"
	"time"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/middleware"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshHandler rotates the refresh token: the presented token is revoked
// and a fresh pair is issued, so a stolen refresh token works at most once.
func RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	rt, err := utils.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid or expired refresh token"})
		return
	}

	if err := database.DB.Model(&models.RefreshToken{}).Where("id = ?", rt.ID).Update("revoked", true).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(rt.UserID, "user", 15*time.Minute)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Could not issue access token"})
		return
	}
	newJTI, err := utils.GenerateRefreshToken(rt.UserID)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Could not store refresh token"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Token refreshed",
		Data: map[string]interface{}{
			"access_token":  accessToken,
			"refresh_token": newJTI,
		},
	})
}
