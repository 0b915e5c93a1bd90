package middleware

import (
	"net/http"
	"strings"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

// AdminAuthMiddleware verifies the request carries a valid admin token and
// that the admin account still exists and is active.
func AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized: No token provided"})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
		claims, err := utils.ValidateAccessToken(tokenStr)
		if err != nil {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized: Invalid token"})
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Forbidden: Admin access required"})
			return
		}

		adminID, ok := utils.ClaimsSubjectID(claims)
		if !ok {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized: Invalid token"})
			return
		}

		var admin models.Admin
		if err := database.DB.First(&admin, adminID).Error; err != nil {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized: Admin not found"})
			return
		}
		if !admin.IsActive {
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Forbidden"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
