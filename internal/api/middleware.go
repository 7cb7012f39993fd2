package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"cv-intake/pkg/logger"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		switch {
		case rw.statusCode >= 500:
			slog.ErrorContext(r.Context(), "request failed with server error", attrs...)
		case rw.statusCode >= 400:
			slog.WarnContext(r.Context(), "request failed with client error", attrs...)
		default:
			slog.InfoContext(r.Context(), "request completed", attrs...)
		}
	})
}

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(r.Context(), "panic recovered", "error", fmt.Sprint(rec), "path", r.URL.Path)
				RespondWithError(w, r, ErrInternalServer("unexpected server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// MethodChecker rejects any method not listed. OPTIONS always succeeds.
func MethodChecker(allowedMethods ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(allowedMethods, r.Method) {
				next(w, r)
				return
			}
			if r.Method == http.MethodOptions {
				w.Header().Set("Allow", strings.Join(allowedMethods, ", "))
				w.WriteHeader(http.StatusOK)
				return
			}
			w.Header().Set("Allow", strings.Join(allowedMethods, ", "))
			RespondWithError(w, r, ErrMethodNotAllowed("method not allowed"))
		}
	}
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func RespondWithError(w http.ResponseWriter, r *http.Request, err *APIError) {
	RespondWithJSON(w, err.StatusCode(), err.WithRequestID(logger.GetRequestID(r.Context())))
}

// fail logs unexpected errors and writes the mapped API error.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := toAPIError(err)
	if apiErr.Code >= 500 {
		slog.ErrorContext(r.Context(), "request error", "path", r.URL.Path, "error", err)
	}
	RespondWithError(w, r, apiErr)
}
