package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}

// LogoutHandler revokes the presented refresh token and blacklists the
// access token's jti for the remainder of its lifetime. The body is optional;
// a bare request still revokes the access token.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var req LogoutRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.RefreshToken != "" {
		database.DB.Model(&models.RefreshToken{}).Where("id = ?", req.RefreshToken).Update("revoked", true)
	}

	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
		if claims, err := utils.ValidateAccessToken(tokenStr); err == nil {
			revokeAccessClaims(claims)
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Logged out"})
}

// LogoutAllHandler revokes every refresh token of the authenticated user.
func LogoutAllHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	if err := database.DB.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
		if claims, err := utils.ValidateAccessToken(tokenStr); err == nil {
			revokeAccessClaims(claims)
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "All sessions revoked"})
}

func revokeAccessClaims(claims jwt.MapClaims) {
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return
	}
	ttl := 15 * time.Minute
	if expRaw, ok := claims["exp"].(float64); ok {
		if remaining := time.Until(time.Unix(int64(expRaw), 0)); remaining > 0 {
			ttl = remaining
		}
	}
	_ = utils.RevokeJTI(jti, ttl)
}
