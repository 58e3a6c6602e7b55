// Package requestid assigns every request an ID, echoed in X-Request-ID.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"ibanguard/pkg/requestcontext"
)

// Header carries the request ID in both directions.
const Header = "X-Request-ID"

// maxLen bounds caller-supplied IDs so they cannot bloat logs.
const maxLen = 128

// Middleware reuses a caller-supplied X-Request-ID or generates a UUID, stores
// it in the context and sets it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" || len(id) > maxLen {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
