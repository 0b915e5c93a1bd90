package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/services/awards"
	"github.com/shashank-padala/insurus-sub000/services/verify"
	"github.com/shashank-padala/insurus-sub000/utils"
)

// evidencePresignSeconds is how long evidence links returned to the client
// stay valid.
const evidencePresignSeconds = 7 * 24 * 3600

const maxEvidenceFiles = 5

func GetTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	task, propertyID, errStatus := ownedTask(r, userID)
	if task == nil {
		writeTaskError(w, errStatus)
		return
	}

	var verifications []models.Verification
	database.DB.Where("task_id = ?", task.ID).Order("created_at DESC").Find(&verifications)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Task retrieved",
		Data: map[string]interface{}{
			"task":          task,
			"property_id":   propertyID,
			"verifications": verifications,
		},
	})
}

// UploadEvidenceHandler accepts a multipart form with up to maxEvidenceFiles
// files under the "files" field, stores them, and appends the resulting URLs
// to the task. Upload alone never changes verification state beyond marking
// the task in progress.
func UploadEvidenceHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	task, _, errStatus := ownedTask(r, userID)
	if task == nil {
		writeTaskError(w, errStatus)
		return
	}

	if task.Status == models.TaskVerified || task.Status == models.TaskCompleted {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Task is already verified"})
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid multipart form"})
		return
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "No evidence files provided"})
		return
	}
	if len(files) > maxEvidenceFiles {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Too many evidence files"})
		return
	}

	var urls []string
	if len(task.EvidenceURLs) > 0 {
		_ = json.Unmarshal(task.EvidenceURLs, &urls)
	}

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Could not read uploaded file"})
			return
		}
		key := utils.EvidenceObjectKey(task.ID, fh.Filename)
		presigned, err := utils.UploadEvidence(key, f, evidencePresignSeconds)
		f.Close()
		if err != nil {
			utils.WriteJSON(w, http.StatusBadGateway, utils.APIResponse{Success: false, Message: "Evidence upload failed"})
			return
		}
		urls = append(urls, presigned)
	}

	urlsJSON, _ := json.Marshal(urls)
	updates := map[string]interface{}{"evidence_urls": datatypes.JSON(urlsJSON)}
	if task.Status == models.TaskPending {
		updates["status"] = models.TaskInProgress
	}
	if err := database.DB.Model(&models.Task{}).Where("id = ?", task.ID).Updates(updates).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Evidence uploaded",
		Data:    map[string]interface{}{"evidence_urls": urls},
	})
}

// VerifyTaskHandler runs the submitted evidence through verification and
// applies the outcome. A rejected task keeps its evidence and may be
// resubmitted; a verified task is final.
func VerifyTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	task, propertyID, errStatus := ownedTask(r, userID)
	if task == nil {
		writeTaskError(w, errStatus)
		return
	}

	if task.Status == models.TaskVerified || task.Status == models.TaskCompleted {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Task is already verified"})
		return
	}

	var urls []string
	if len(task.EvidenceURLs) > 0 {
		_ = json.Unmarshal(task.EvidenceURLs, &urls)
	}
	if len(urls) == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Upload evidence before requesting verification"})
		return
	}

	result := verify.NewAdapter().Verify(task, urls)

	outcome, err := awards.NewProcessor().Apply(database.DB, task, propertyID, userID, urls, result)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Could not record verification"})
		return
	}

	refreshChecklistStatus(task.ChecklistID)

	message := "Task verified"
	if !outcome.Verified {
		message = "Evidence rejected"
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: message,
		Data:    outcome,
	})
}

// ownedTask loads the {id} path task and enforces ownership through its
// checklist's property. It returns the property id alongside for scoring.
func ownedTask(r *http.Request, userID uint) (*models.Task, uint, int) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return nil, 0, http.StatusBadRequest
	}

	var task models.Task
	if err := database.DB.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, http.StatusNotFound
		}
		return nil, 0, http.StatusInternalServerError
	}

	var checklist models.TaskChecklist
	if err := database.DB.First(&checklist, task.ChecklistID).Error; err != nil {
		return nil, 0, http.StatusInternalServerError
	}
	var property models.Property
	if err := database.DB.Where("id = ? AND user_id = ?", checklist.PropertyID, userID).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, http.StatusNotFound
		}
		return nil, 0, http.StatusInternalServerError
	}
	return &task, property.ID, 0
}

func writeTaskError(w http.ResponseWriter, status int) {
	switch status {
	case http.StatusBadRequest:
		utils.WriteJSON(w, status, utils.APIResponse{Success: false, Message: "Invalid task id"})
	case http.StatusNotFound:
		utils.WriteJSON(w, status, utils.APIResponse{Success: false, Message: "Task not found"})
	default:
		utils.WriteJSON(w, status, utils.APIResponse{Success: false, Message: "Server error"})
	}
}
