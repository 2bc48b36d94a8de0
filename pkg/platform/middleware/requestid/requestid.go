package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"regguard/pkg/requestcontext"
)

// Header carries the request correlation ID in both directions.
const Header = "X-Request-ID"

// Middleware assigns each request an ID, honoring one supplied by the caller,
// and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
