package users

import (
	"net/http"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/services/scoring"
	"github.com/shashank-padala/insurus-sub000/utils"
)

// SummaryHandler aggregates the user's standing: points, tier and discount,
// progress to the next tier, properties with their safety scores, and task
// counts by status.
func SummaryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	db := database.DB

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	tier := scoring.ResolveTier(user.TotalPointsEarned)

	var nextTier map[string]interface{}
	for _, t := range scoring.Tiers() {
		if t.MinPoints > user.TotalPointsEarned {
			nextTier = map[string]interface{}{
				"name":          t.Name,
				"min_points":    t.MinPoints,
				"points_needed": t.MinPoints - user.TotalPointsEarned,
			}
			break
		}
	}

	var properties []models.Property
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&properties).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	taskCounts := map[string]int64{}
	for _, status := range []string{models.TaskPending, models.TaskInProgress, models.TaskVerified, models.TaskRejected, models.TaskCompleted} {
		var n int64
		db.Model(&models.Task{}).
			Joins("JOIN task_checklists ON task_checklists.id = tasks.checklist_id").
			Joins("JOIN properties ON properties.id = task_checklists.property_id").
			Where("properties.user_id = ? AND tasks.status = ?", userID, status).
			Count(&n)
		taskCounts[status] = n
	}

	var recentRewards []models.Reward
	db.Where("user_id = ?", userID).Order("created_at DESC").Limit(5).Find(&recentRewards)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Summary retrieved",
		Data: map[string]interface{}{
			"user": map[string]interface{}{
				"id":           user.ID,
				"email":        user.Email,
				"full_name":    user.FullName,
				"total_points": user.TotalPointsEarned,
			},
			"tier":           tier,
			"next_tier":      nextTier,
			"properties":     properties,
			"task_counts":    taskCounts,
			"recent_rewards": recentRewards,
		},
	})
}
