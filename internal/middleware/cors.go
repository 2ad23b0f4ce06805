package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin is a parsed "scheme://*.domain" pattern. It matches exactly
// one subdomain label, so "https://*.example.com" accepts
// "https://app.example.com" but not "https://a.b.example.com".
type wildcardOrigin struct {
	scheme string // "https://" or "http://"
	suffix string // ".example.com"
}

// parseWildcardOrigin parses an allowed-origin pattern containing a single
// leading subdomain wildcard. Returns nil for exact origins and for
// malformed patterns.
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	var scheme string
	switch {
	case strings.HasPrefix(pattern, "https://"):
		scheme = "https://"
	case strings.HasPrefix(pattern, "http://"):
		scheme = "http://"
	default:
		return nil
	}

	rest := strings.TrimPrefix(pattern, scheme)
	if !strings.HasPrefix(rest, "*.") {
		return nil
	}

	domain := rest[2:]
	if domain == "" || strings.Contains(domain, "*") {
		return nil
	}
	// Require at least "name.tld" after the wildcard.
	if len(strings.Split(domain, ".")) < 2 {
		return nil
	}

	return &wildcardOrigin{
		scheme: scheme,
		suffix: rest[1:],
	}
}

func (w *wildcardOrigin) matches(origin string) bool {
	if !strings.HasPrefix(origin, w.scheme) {
		return false
	}
	host := strings.TrimPrefix(origin, w.scheme)
	if !strings.HasSuffix(host, w.suffix) {
		return false
	}
	sub := strings.TrimSuffix(host, w.suffix)
	return sub != "" && !strings.ContainsAny(sub, "./")
}

// CORS middleware to handle cross-origin requests
// Reads CORS_ALLOWED_ORIGINS environment variable to restrict origins;
// entries may be exact origins or single-subdomain wildcards like
// "https://*.workpulse-app.pages.dev". If not set, defaults to "*".
func CORS() gin.HandlerFunc {
	allowedOriginsStr := os.Getenv("CORS_ALLOWED_ORIGINS")
	allowAll := allowedOriginsStr == ""

	var exactOrigins []string
	var wildcards []*wildcardOrigin
	if !allowAll {
		for _, entry := range strings.Split(allowedOriginsStr, ",") {
			entry = strings.TrimSpace(entry)
			if w := parseWildcardOrigin(entry); w != nil {
				wildcards = append(wildcards, w)
			} else {
				exactOrigins = append(exactOrigins, entry)
			}
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			allowed := false
			for _, allowedOrigin := range exactOrigins {
				if origin == allowedOrigin {
					allowed = true
					break
				}
			}
			if !allowed {
				for _, w := range wildcards {
					if w.matches(origin) {
						allowed = true
						break
					}
				}
			}

			if allowed {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			} else {
				// Origin not allowed, but still need to set headers for preflight
				if c.Request.Method == "OPTIONS" {
					c.AbortWithStatus(403)
					return
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, Idempotency-Key")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
