package admins

import (
	"net/http"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

// ListCategoriesHandler returns the seeded task and risk category reference
// tables. The code sets are closed; there is no create or delete endpoint.
func ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	var cats []models.TaskCategory
	if err := database.DB.Order("id ASC").Find(&cats).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	var risks []models.RiskCategory
	if err := database.DB.Order("id ASC").Find(&risks).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Categories retrieved",
		Data: map[string]interface{}{
			"task_categories": cats,
			"risk_categories": risks,
		},
	})
}
