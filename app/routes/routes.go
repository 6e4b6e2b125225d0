// Package routes assembles the HTTP router.
package routes

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"blogapi/app/controllers"
	"blogapi/app/middleware"
	"blogapi/app/services"
)

// Deps carries everything the router needs; nothing here is read from
// ambient state.
type Deps struct {
	Posts   *services.PostService
	Auth    *services.AuthService
	Sitemap *services.SitemapService
	Logger  *slog.Logger
	CORS    middleware.CORSConfig
}

// Setup wires the API routes. List, get and sitemap are public; all
// mutating post endpoints require a bearer token.
func Setup(deps Deps) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recoverer(deps.Logger))
	router.Use(middleware.CORS(deps.CORS))

	postController := controllers.NewPostController(deps.Posts, deps.Logger)
	authController := controllers.NewAuthController(deps.Auth, deps.Logger)
	sitemapController := controllers.NewSitemapController(deps.Sitemap, deps.Logger)

	requireAuth := middleware.RequireAuth(deps.Auth, deps.Logger)

	api := router.PathPrefix("/api").Subrouter()

	// CORS preflight for every API path; the CORS middleware answers it.
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods(http.MethodGet)
	posts.HandleFunc("/{id}", postController.Show).Methods(http.MethodGet)
	posts.Handle("", requireAuth(http.HandlerFunc(postController.Create))).Methods(http.MethodPost)
	posts.Handle("/{id}", requireAuth(http.HandlerFunc(postController.Update))).Methods(http.MethodPut)
	posts.Handle("/{id}", requireAuth(http.HandlerFunc(postController.Delete))).Methods(http.MethodDelete)

	api.HandleFunc("/sitemap", sitemapController.Show).Methods(http.MethodGet)

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", authController.Login).Methods(http.MethodPost)
	auth.HandleFunc("/verify", authController.Verify).Methods(http.MethodPost)
	auth.HandleFunc("/logout", authController.Logout).Methods(http.MethodPost)

	return router
}
