package admins

import (
	"net/http"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

// DashboardHandler returns platform-wide counters for the admin overview.
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	db := database.DB

	var users, properties, checklists, tasks, verified int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Property{}).Count(&properties)
	db.Model(&models.TaskChecklist{}).Count(&checklists)
	db.Model(&models.Task{}).Count(&tasks)
	db.Model(&models.Task{}).Where("status = ?", models.TaskVerified).Count(&verified)

	var pointsAwarded int64
	db.Model(&models.Reward{}).Select("COALESCE(SUM(points_earned),0)").Scan(&pointsAwarded)

	var chainConfirmed, chainFailed int64
	db.Model(&models.BlockchainRecord{}).Where("status = ?", models.BlockchainConfirmed).Count(&chainConfirmed)
	db.Model(&models.BlockchainRecord{}).Where("status = ?", models.BlockchainFailed).Count(&chainFailed)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Dashboard retrieved",
		Data: map[string]interface{}{
			"users":          users,
			"properties":     properties,
			"checklists":     checklists,
			"tasks":          tasks,
			"tasks_verified": verified,
			"points_awarded": pointsAwarded,
			"blockchain": map[string]interface{}{
				"confirmed": chainConfirmed,
				"failed":    chainFailed,
			},
		},
	})
}
