package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// AuthCheck reports whether the request carries an authenticated
// session. The guard and the handlers share one check so the two call
// sites cannot drift.
type AuthCheck func(r *http.Request) bool

// GuardConfig holds the route guard rule table
type GuardConfig struct {
	ProtectedPaths []string // path prefixes requiring authentication
	LoginPath      string   // where unauthenticated requests go
	HomePath       string   // where authenticated visits to LoginPath go
}

// RouteGuard redirects unauthenticated requests for protected paths to
// the login page, preserving the requested path as a return target, and
// sends authenticated visitors of the login page to the landing page.
// Everything else passes through unchanged. The guard never mutates
// session state.
func RouteGuard(cfg GuardConfig, isAuthenticated AuthCheck, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			for _, protected := range cfg.ProtectedPaths {
				if strings.HasPrefix(path, protected) {
					if !isAuthenticated(r) {
						logger.Debug("Redirecting unauthenticated request to login",
							zap.String("path", path),
						)
						target := cfg.LoginPath + "?next=" + url.QueryEscape(path)
						http.Redirect(w, r, target, http.StatusSeeOther)
						return
					}
					break
				}
			}

			if path == cfg.LoginPath && isAuthenticated(r) {
				http.Redirect(w, r, cfg.HomePath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
