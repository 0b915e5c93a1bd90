package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/shashank-padala/insurus-sub000/controllers/admins"
	"github.com/shashank-padala/insurus-sub000/middleware"
)

// SetAdminRoutes wires the admin login and the protected admin surface.
func SetAdminRoutes(api *mux.Router) {
	adminLimiter := middleware.NewIPRateLimiter(20, time.Minute, trustedProxies())

	api.Handle("/admin/login", adminLimiter.Middleware(http.HandlerFunc(admins.LoginHandler))).Methods(http.MethodPost)

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.AdminAuthMiddleware)

	protected.Handle("/dashboard", http.HandlerFunc(admins.DashboardHandler)).Methods(http.MethodGet)

	protected.Handle("/banners", http.HandlerFunc(admins.ListBannersHandler)).Methods(http.MethodGet)
	protected.Handle("/banners", http.HandlerFunc(admins.CreateBannerHandler)).Methods(http.MethodPost)
	protected.Handle("/banners/{id:[0-9]+}", http.HandlerFunc(admins.UpdateBannerHandler)).Methods(http.MethodPut)
	protected.Handle("/banners/{id:[0-9]+}", http.HandlerFunc(admins.DeleteBannerHandler)).Methods(http.MethodDelete)

	protected.Handle("/tasks/broadcast", http.HandlerFunc(admins.BroadcastTaskHandler)).Methods(http.MethodPost)
	protected.Handle("/tasks/broadcast", http.HandlerFunc(admins.ListBroadcastsHandler)).Methods(http.MethodGet)

	protected.Handle("/users", http.HandlerFunc(admins.ListUsersHandler)).Methods(http.MethodGet)
	protected.Handle("/users/{id:[0-9]+}", http.HandlerFunc(admins.GetUserHandler)).Methods(http.MethodGet)
	protected.Handle("/users/{id:[0-9]+}/status", http.HandlerFunc(admins.UpdateUserStatusHandler)).Methods(http.MethodPut)

	protected.Handle("/categories", http.HandlerFunc(admins.ListCategoriesHandler)).Methods(http.MethodGet)
}
