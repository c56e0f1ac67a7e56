package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(backendHandler *BackendHandler, middleware func(http.Handler) http.Handler) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pdf-backend-bench"}`))
	}).Methods("GET")

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware)

	// Backend catalog routes
	api.HandleFunc("/backends", backendHandler.ListBackends).Methods("GET")
	api.HandleFunc("/backends/{name}/text", backendHandler.ExtractText).Methods("POST")
	api.HandleFunc("/backends/{name}/images", backendHandler.ExtractImages).Methods("POST")
	api.HandleFunc("/backends/{name}/watermark", backendHandler.ApplyWatermark).Methods("POST")

	// Comparison routes
	api.HandleFunc("/compare/text", backendHandler.CompareText).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
