package middleware

import (
	"context"
	"net/http"

	"lend-closet-backend/internal/models"
)

type contextKey string

const viewerKey contextKey = "viewer"

// WithViewer attaches the session's current-user identity to every request
// context. The service is single-session: one fixed viewer configured at
// startup stands in for authentication.
func WithViewer(viewer models.Person) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), viewerKey, viewer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetViewer extracts the viewer identity from context.
func GetViewer(ctx context.Context) models.Person {
	viewer, ok := ctx.Value(viewerKey).(models.Person)
	if !ok {
		return models.Person{}
	}
	return viewer
}
