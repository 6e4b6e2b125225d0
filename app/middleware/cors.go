package middleware

import "net/http"

const (
	corsMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsHeaders = "Content-Type, Accept, Authorization, X-Requested-With"
	corsMaxAge  = "3600"
)

// CORSConfig selects one of two mutually exclusive cross-origin modes:
// echo the requesting origin with credentials enabled, or allow any
// origin without credentials. Browsers reject the combination.
type CORSConfig struct {
	// AllowedOrigins restricts which origins are echoed back. Empty means
	// any origin.
	AllowedOrigins []string

	// AllowCredentials enables credentialed requests and forces the
	// echo-origin mode.
	AllowCredentials bool
}

func (c CORSConfig) originAllowed(origin string) bool {
	if len(c.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// allowOriginValue returns the Access-Control-Allow-Origin value for the
// request, or "" when the origin must not be allowed.
func (c CORSConfig) allowOriginValue(origin string) string {
	if c.AllowCredentials {
		// Credentialed mode must echo a concrete origin, never *.
		if origin != "" && c.originAllowed(origin) {
			return origin
		}
		return ""
	}

	if len(c.AllowedOrigins) == 0 {
		return "*"
	}
	if c.originAllowed(origin) {
		return origin
	}
	return ""
}

// CORS sets the cross-origin headers and answers preflight requests.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if allow := cfg.allowOriginValue(origin); allow != "" {
				w.Header().Set("Access-Control-Allow-Origin", allow)
				if allow != "*" {
					w.Header().Add("Vary", "Origin")
				}
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}
			w.Header().Set("Access-Control-Allow-Methods", corsMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsHeaders)
			w.Header().Set("Access-Control-Max-Age", corsMaxAge)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
