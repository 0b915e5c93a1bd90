package controllers

import (
	"net/http"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

// PublicBannersHandler lists active banners in display order. Unauthenticated.
func PublicBannersHandler(w http.ResponseWriter, r *http.Request) {
	var banners []models.Banner
	if err := database.DB.Where("active = ?", true).
		Order("sort_order ASC, id ASC").Find(&banners).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Banners retrieved",
		Data:    map[string]interface{}{"banners": banners},
	})
}
