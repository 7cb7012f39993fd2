package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	mux.HandleFunc("/health", MethodChecker(http.MethodGet)(a.HealthHandler))

	mux.HandleFunc("/api/cv/upload", MethodChecker(http.MethodPost)(a.CVUploadHandler))
	mux.HandleFunc("/api/cv/reparse", MethodChecker(http.MethodPost)(a.CVReparseHandler))
	mux.HandleFunc("/api/cv/jobs", MethodChecker(http.MethodGet)(a.ParseJobHandler))
	mux.HandleFunc("/api/profile", MethodChecker(http.MethodGet, http.MethodPut)(a.ProfileHandler))
	mux.HandleFunc("/api/match", MethodChecker(http.MethodGet)(a.MatchHandler))

	return RequestID(Logger(Recover(mux)))
}
