package routes

import (
	"net/http"

	"codenix/app/config"
	"codenix/app/controllers"
	"codenix/app/middleware"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
)

// Setup defines the application's routes and returns a router.
func Setup(controller *controllers.BlogController, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Your server is up and running...."}`))
	}).Methods("GET")

	// Blog API endpoints. Fixed paths are registered before the
	// parameterized id routes.
	api := router.PathPrefix("/api/blogs").Subrouter()
	api.HandleFunc("", controller.Create).Methods("POST")
	api.HandleFunc("", controller.List).Methods("GET")

	api.HandleFunc("/featured/posts", controller.Featured).Methods("GET")
	api.HandleFunc("/search/posts", controller.Search).Methods("GET")
	api.HandleFunc("/stats/analytics", controller.Stats).Methods("GET")
	api.HandleFunc("/meta/categories", controller.Categories).Methods("GET")
	api.HandleFunc("/meta/tags", controller.Tags).Methods("GET")

	api.HandleFunc("/category/{category}", controller.ByCategory).Methods("GET")
	api.HandleFunc("/author/{author}", controller.ByAuthor).Methods("GET")
	api.HandleFunc("/tag/{tag}", controller.ByTag).Methods("GET")
	api.HandleFunc("/slug/{slug}", controller.GetBySlug).Methods("GET")

	api.HandleFunc("/{id}", controller.Get).Methods("GET")
	api.HandleFunc("/{id}", controller.Update).Methods("PUT")
	api.HandleFunc("/{id}", controller.Delete).Methods("DELETE")

	return router
}
