package admins

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/middleware"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

type BannerRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	ImageURL  string `json:"image_url" validate:"required,url,max=512"`
	LinkURL   string `json:"link_url" validate:"omitempty,url,max=512"`
	Active    *bool  `json:"active,omitempty"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

func ListBannersHandler(w http.ResponseWriter, r *http.Request) {
	var banners []models.Banner
	if err := database.DB.Order("sort_order ASC, id ASC").Find(&banners).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Banners retrieved", Data: map[string]interface{}{"banners": banners}})
}

func CreateBannerHandler(w http.ResponseWriter, r *http.Request) {
	var req BannerRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	banner := models.Banner{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		Active:    true,
		SortOrder: req.SortOrder,
	}
	if req.Active != nil {
		banner.Active = *req.Active
	}
	if err := database.DB.Create(&banner).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Could not create banner"})
		return
	}
	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Banner created", Data: banner})
}

func UpdateBannerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := bannerID(w, r)
	if !ok {
		return
	}
	var req BannerRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var banner models.Banner
	if err := database.DB.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Banner not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	banner.Title = req.Title
	banner.ImageURL = req.ImageURL
	banner.LinkURL = req.LinkURL
	banner.SortOrder = req.SortOrder
	if req.Active != nil {
		banner.Active = *req.Active
	}
	if err := database.DB.Save(&banner).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Could not update banner"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Banner updated", Data: banner})
}

func DeleteBannerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := bannerID(w, r)
	if !ok {
		return
	}
	res := database.DB.Delete(&models.Banner{}, id)
	if res.Error != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Banner not found"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Banner deleted"})
}

func bannerID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid banner id"})
		return 0, false
	}
	return id, true
}
