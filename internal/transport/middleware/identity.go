package middleware

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/attention-backend/internal/config"
	"github.com/heartmarshall/attention-backend/pkg/ctxutil"
)

// maxUserNameLen bounds the display name taken from the gateway header, in
// characters.
const maxUserNameLen = 200

// Identity reads the authenticated user passed by the upstream gateway. A
// request without the id header continues anonymously; services that need a
// user reject it. A malformed id is rejected with 401.
func Identity(cfg config.IdentityConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(cfg.UserIDHeader))
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := uuid.Parse(raw)
			if err != nil || userID == uuid.Nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			user := ctxutil.User{ID: userID, Name: displayName(r.Header.Get(cfg.UserNameHeader))}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithUser(r.Context(), user)))
		})
	}
}

func displayName(raw string) string {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) <= maxUserNameLen {
		return name
	}
	return string([]rune(name)[:maxUserNameLen])
}
