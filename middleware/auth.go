package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashank-padala/insurus-sub000/utils"
)

// AuthMiddleware validates the bearer token and injects the user id and role
// into the request context. Admin tokens are blocked from user endpoints.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
		claims, err := utils.ValidateAccessToken(tokenStr)
		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Session expired, please log in again"})
				return
			}
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid token"})
			return
		}

		userID, ok := utils.ClaimsSubjectID(claims)
		if !ok || userID == 0 {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid token"})
			return
		}

		role, _ := claims["role"].(string)
		if role == "admin" {
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Access denied"})
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDKey, userID)
		ctx = context.WithValue(ctx, utils.UserRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
