package users

import (
	"net/http"
	"strconv"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

// ListRewardsHandler returns the user's reward history, newest first, with
// limit/offset paging.
func ListRewardsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	offset := 0
	if s := r.URL.Query().Get("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}

	var total int64
	database.DB.Model(&models.Reward{}).Where("user_id = ?", userID).Count(&total)

	var rewards []models.Reward
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&rewards).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	var totalPoints int64
	database.DB.Model(&models.Reward{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(points_earned),0)").Scan(&totalPoints)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Rewards retrieved",
		Data: map[string]interface{}{
			"rewards":      rewards,
			"total":        total,
			"total_points": totalPoints,
			"limit":        limit,
			"offset":       offset,
		},
	})
}
