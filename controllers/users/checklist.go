package users

import (
	"net/http"
	"time"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

// ListChecklistsHandler returns a property's checklists, optionally filtered
// to one month (?month=YYYY-MM), each with its tasks.
func ListChecklistsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	property, errStatus := ownedProperty(r, userID)
	if property == nil {
		writePropertyError(w, errStatus)
		return
	}

	q := database.DB.Where("property_id = ?", property.ID)
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err := time.Parse("2006-01", monthStr)
		if err != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid month, expected YYYY-MM"})
			return
		}
		q = q.Where("checklist_month = ?", month)
	}

	var checklists []models.TaskChecklist
	if err := q.Order("checklist_month ASC").Find(&checklists).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	type checklistWithTasks struct {
		models.TaskChecklist
		Tasks []models.Task `json:"tasks"`
	}

	out := make([]checklistWithTasks, 0, len(checklists))
	for _, cl := range checklists {
		var tasks []models.Task
		if err := database.DB.Where("checklist_id = ?", cl.ID).Order("due_date ASC").Find(&tasks).Error; err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
			return
		}
		out = append(out, checklistWithTasks{TaskChecklist: cl, Tasks: tasks})
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Checklists retrieved",
		Data:    map[string]interface{}{"checklists": out},
	})
}

// refreshChecklistStatus derives the checklist status from its tasks after a
// verification event. All tasks settled means completed; any progress means
// in_progress.
func refreshChecklistStatus(checklistID uint) {
	var total, settled, touched int64
	database.DB.Model(&models.Task{}).Where("checklist_id = ?", checklistID).Count(&total)
	if total == 0 {
		return
	}
	database.DB.Model(&models.Task{}).
		Where("checklist_id = ? AND status IN ?", checklistID, []string{models.TaskVerified, models.TaskCompleted}).
		Count(&settled)
	database.DB.Model(&models.Task{}).
		Where("checklist_id = ? AND status <> ?", checklistID, models.TaskPending).
		Count(&touched)

	status := models.ChecklistPending
	switch {
	case settled == total:
		status = models.ChecklistCompleted
	case touched > 0:
		status = models.ChecklistInProgress
	}
	database.DB.Model(&models.TaskChecklist{}).Where("id = ?", checklistID).Update("status", status)
}
