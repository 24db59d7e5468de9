// Package server exposes hide and reveal over HTTP for tooling that cannot
// shell out to the CLI.
package server

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

// RunServe starts the API server. Port resolution: --port flag, then the
// PIXELVEIL_PORT environment variable (a .env file is honored), then 8080.
func RunServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.String("port", "", "Port to listen on")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *port == "" {
		godotenv.Load()
		*port = os.Getenv("PIXELVEIL_PORT")
	}
	if *port == "" {
		*port = "8080"
	}

	log.Printf("pixelveil API listening on :%s", *port)
	return http.ListenAndServe(":"+*port, NewRouter())
}

// corsMiddleware adds CORS headers to each response.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewRouter creates and configures the application router.
func NewRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(corsMiddleware)

	apiV1 := router.PathPrefix("/api/v1").Subrouter()
	apiV1.HandleFunc("/hide", handleHide).Methods(http.MethodPost)
	apiV1.HandleFunc("/reveal", handleReveal).Methods(http.MethodPost)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}).Methods(http.MethodGet)

	return router
}
