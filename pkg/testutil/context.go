package testutil

import (
	"net/http"
	"time"

	"ibanguard/pkg/requestcontext"
)

// WithRequestID adds a request ID to the request context, as the requestid
// middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithRequestTime pins the request-scoped time.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
