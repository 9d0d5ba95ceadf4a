package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/ivanosipov/wordvault/internal/common"
	"github.com/ivanosipov/wordvault/internal/server/users"
)

type ctxKey string

const userKey ctxKey = "user"

// userFromContext returns the authenticated user stored by requireUser.
func userFromContext(ctx context.Context) (*users.User, bool) {
	u, ok := ctx.Value(userKey).(*users.User)
	return u, ok
}

// requireUser extracts the bearer token, resolves it to a user, and stores
// the user in the request context. Every failure mode (missing header,
// bad signature, expired token, unknown subject) produces the same 401
// response so a caller cannot tell which check failed.
func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get(common.AuthorizationHeaderName)
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, common.TokenTypeBearer) || token == "" {
			writeError(w, http.StatusUnauthorized, "unauthenticated", "could not validate credentials")
			return
		}

		user, err := s.users.ResolveToken(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthenticated", "could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next(w, r.WithContext(ctx))
	}
}

// withCORS allows any origin, method, and header, matching the reference
// deployment posture of the service.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLog logs one line per request: method, path, status, duration.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
