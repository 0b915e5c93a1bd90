package admins

import (
	"net/http"
	"time"

	"github.com/shashank-padala/insurus-sub000/catalog"
	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/middleware"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/services/planner"
	"github.com/shashank-padala/insurus-sub000/utils"
)

type BroadcastTaskRequest struct {
	Name             string `json:"name" validate:"required,max=255"`
	Description      string `json:"description" validate:"required"`
	Category         string `json:"category" validate:"required"`
	RiskCategory     string `json:"risk_category" validate:"required"`
	PointsValue      int    `json:"points_value" validate:"required"`
	VerificationType string `json:"verification_type" validate:"required"`
}

// BroadcastTaskHandler validates an ad-hoc task against the same catalog
// rules as generated candidates, then appends it to the current-month
// checklist of every property.
func BroadcastTaskHandler(w http.ResponseWriter, r *http.Request) {
	adminID, err := utils.ExtractUserIDFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req BroadcastTaskRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	tpl := catalog.Template{
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		RiskCategory:     req.RiskCategory,
		PointsValue:      req.PointsValue,
		Frequency:        catalog.FrequencyAsNeeded,
		VerificationType: catalog.VerificationType(req.VerificationType),
	}
	if err := tpl.Validate(); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid task: " + err.Error()})
		return
	}

	result := planner.BroadcastTask(database.DB, tpl, time.Now())

	record := models.AdminTask{
		AdminID:          int64(adminID),
		Name:             tpl.Name,
		Description:      tpl.Description,
		Category:         tpl.Category,
		RiskCategory:     tpl.RiskCategory,
		PointsValue:      tpl.PointsValue,
		VerificationType: tpl.VerificationType,
		TasksCreated:     result.TasksCreated,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Broadcast ran but could not be recorded"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Task broadcast",
		Data: map[string]interface{}{
			"broadcast": record,
			"result":    result,
		},
	})
}

// ListBroadcastsHandler returns past broadcasts, newest first.
func ListBroadcastsHandler(w http.ResponseWriter, r *http.Request) {
	var broadcasts []models.AdminTask
	if err := database.DB.Order("created_at DESC").Limit(100).Find(&broadcasts).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Broadcasts retrieved", Data: map[string]interface{}{"broadcasts": broadcasts}})
}
