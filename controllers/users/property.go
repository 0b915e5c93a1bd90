package users

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/middleware"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/services/planner"
	"github.com/shashank-padala/insurus-sub000/utils"
)

// First scheduled task occurrence is 30 days after registration, giving the
// owner a settling-in window before the plan starts.
const firstTaskDelayDays = 30

type PropertyRequest struct {
	Address        string          `json:"address" validate:"required,max=255"`
	City           string          `json:"city" validate:"required,max=100"`
	State          string          `json:"state" validate:"max=100"`
	ZipCode        string          `json:"zip_code" validate:"max=20"`
	Country        string          `json:"country" validate:"max=100"`
	PropertyType   string          `json:"property_type" validate:"required,oneof=house apartment condo townhouse mobile_home other"`
	SafetyDevices  json.RawMessage `json:"safety_devices,omitempty"`
	RiskAssessment json.RawMessage `json:"risk_assessment,omitempty"`
}

// CreatePropertyHandler registers a property and materializes its first-year
// safety plan. Plan creation favors partial success: whatever could not be
// created is reported back, the property itself is never rolled back for it.
func CreatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req PropertyRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	property := models.Property{
		UserID:         userID,
		Address:        strings.TrimSpace(req.Address),
		City:           strings.TrimSpace(req.City),
		State:          strings.TrimSpace(req.State),
		ZipCode:        strings.TrimSpace(req.ZipCode),
		Country:        strings.TrimSpace(req.Country),
		PropertyType:   req.PropertyType,
		SafetyDevices:  datatypes.JSON(req.SafetyDevices),
		RiskAssessment: datatypes.JSON(req.RiskAssessment),
	}
	if err := database.DB.Create(&property).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Could not create property"})
		return
	}

	templates := planner.NewGenerator().Generate(&property, nil)

	meta, _ := json.Marshal(map[string]interface{}{
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"templates":    len(templates),
	})

	firstTaskDate := property.CreatedAt.AddDate(0, 0, firstTaskDelayDays)
	plan := planner.MaterializeYear(database.DB, &property, firstTaskDate, templates, datatypes.JSON(meta))
	if len(plan.Errors) > 0 {
		log.Printf("[property] plan for property %d created with %d errors", property.ID, len(plan.Errors))
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Property registered",
		Data: map[string]interface{}{
			"property": property,
			"plan":     plan,
		},
	})
}

func ListPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var properties []models.Property
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&properties).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Properties retrieved",
		Data:    map[string]interface{}{"properties": properties},
	})
}

func GetPropertyHandler(w http.ResponseWriter, r *http.Request) {
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

	var checklistCount, taskCount int64
	database.DB.Model(&models.TaskChecklist{}).Where("property_id = ?", property.ID).Count(&checklistCount)
	database.DB.Model(&models.Task{}).
		Joins("JOIN task_checklists ON task_checklists.id = tasks.checklist_id").
		Where("task_checklists.property_id = ?", property.ID).
		Count(&taskCount)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Property retrieved",
		Data: map[string]interface{}{
			"property":   property,
			"checklists": checklistCount,
			"tasks":      taskCount,
		},
	})
}

// DeletePropertyHandler removes a property. Checklists, tasks, verifications
// and rewards follow via FK cascade; stored evidence objects are removed
// best-effort.
func DeletePropertyHandler(w http.ResponseWriter, r *http.Request) {
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

	var tasks []models.Task
	database.DB.
		Joins("JOIN task_checklists ON task_checklists.id = tasks.checklist_id").
		Where("task_checklists.property_id = ?", property.ID).
		Find(&tasks)

	if err := database.DB.Delete(&models.Property{}, property.ID).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Could not delete property"})
		return
	}

	go cleanupEvidence(tasks)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Property deleted"})
}

func cleanupEvidence(tasks []models.Task) {
	for _, t := range tasks {
		if len(t.EvidenceURLs) == 0 {
			continue
		}
		var urls []string
		if err := json.Unmarshal(t.EvidenceURLs, &urls); err != nil {
			continue
		}
		for _, raw := range urls {
			key := objectKeyFromURL(raw)
			if key == "" {
				continue
			}
			if err := utils.DeleteEvidence(key); err != nil {
				log.Printf("[property] evidence cleanup failed for task %d: %v", t.ID, err)
			}
		}
	}
}

// objectKeyFromURL recovers the storage key from a presigned evidence URL.
func objectKeyFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

// ownedProperty loads the {id} path property and enforces ownership. A
// property belonging to another user reads as not found.
func ownedProperty(r *http.Request, userID uint) (*models.Property, int) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return nil, http.StatusBadRequest
	}

	var property models.Property
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound
		}
		return nil, http.StatusInternalServerError
	}
	return &property, 0
}

func writePropertyError(w http.ResponseWriter, status int) {
	switch status {
	case http.StatusBadRequest:
		utils.WriteJSON(w, status, utils.APIResponse{Success: false, Message: "Invalid property id"})
	case http.StatusNotFound:
		utils.WriteJSON(w, status, utils.APIResponse{Success: false, Message: "Property not found"})
	default:
		utils.WriteJSON(w, status, utils.APIResponse{Success: false, Message: "Server error"})
	}
}
