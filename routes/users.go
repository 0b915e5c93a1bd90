package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/shashank-padala/insurus-sub000/controllers/auth"
	"github.com/shashank-padala/insurus-sub000/controllers/users"
	"github.com/shashank-padala/insurus-sub000/middleware"
)

// UsersRoutes wires the auth endpoints and the authenticated user surface.
func UsersRoutes(api *mux.Router) {
	// Auth endpoints sit behind a per-IP limiter: 30 requests/minute.
	authLimiter := middleware.NewIPRateLimiter(30, time.Minute, trustedProxies())

	authRouter := api.PathPrefix("/auth").Subrouter()
	authRouter.Use(authLimiter.Middleware)
	authRouter.Handle("/register", http.HandlerFunc(auth.RegisterHandler)).Methods(http.MethodPost)
	authRouter.Handle("/login", http.HandlerFunc(auth.LoginHandler)).Methods(http.MethodPost)
	authRouter.Handle("/refresh", http.HandlerFunc(auth.RefreshHandler)).Methods(http.MethodPost)
	authRouter.Handle("/logout", http.HandlerFunc(auth.LogoutHandler)).Methods(http.MethodPost)
	authRouter.Handle("/logout-all", middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutAllHandler))).Methods(http.MethodPost)

	// Properties and their plans
	api.Handle("/properties", middleware.AuthMiddleware(http.HandlerFunc(users.CreatePropertyHandler))).Methods(http.MethodPost)
	api.Handle("/properties", middleware.AuthMiddleware(http.HandlerFunc(users.ListPropertiesHandler))).Methods(http.MethodGet)
	api.Handle("/properties/{id:[0-9]+}", middleware.AuthMiddleware(http.HandlerFunc(users.GetPropertyHandler))).Methods(http.MethodGet)
	api.Handle("/properties/{id:[0-9]+}", middleware.AuthMiddleware(http.HandlerFunc(users.DeletePropertyHandler))).Methods(http.MethodDelete)
	api.Handle("/properties/{id:[0-9]+}/checklists", middleware.AuthMiddleware(http.HandlerFunc(users.ListChecklistsHandler))).Methods(http.MethodGet)

	// Tasks, evidence and verification
	api.Handle("/tasks/{id:[0-9]+}", middleware.AuthMiddleware(http.HandlerFunc(users.GetTaskHandler))).Methods(http.MethodGet)
	api.Handle("/tasks/{id:[0-9]+}/evidence", middleware.AuthMiddleware(http.HandlerFunc(users.UploadEvidenceHandler))).Methods(http.MethodPost)
	api.Handle("/tasks/{id:[0-9]+}/verify", middleware.AuthMiddleware(http.HandlerFunc(users.VerifyTaskHandler))).Methods(http.MethodPost)

	// Rewards and account summary
	api.Handle("/rewards", middleware.AuthMiddleware(http.HandlerFunc(users.ListRewardsHandler))).Methods(http.MethodGet)
	api.Handle("/me/summary", middleware.AuthMiddleware(http.HandlerFunc(users.SummaryHandler))).Methods(http.MethodGet)
}
