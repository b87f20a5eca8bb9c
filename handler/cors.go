package handler

import (
	"net/http"
	"strings"
)

// CORS applies a cross-origin policy to every path under a prefix.
type CORS struct {
	prefix    string
	allowAll  bool
	origins   map[string]bool
	methods   string
	maxAgeSec string
}

// NewCORS allows the listed origins on paths under prefix. "*" allows any origin.
func NewCORS(prefix string, origins ...string) *CORS {
	c := &CORS{
		prefix:    prefix,
		origins:   make(map[string]bool),
		methods:   "GET, HEAD, POST, OPTIONS, PUT, PATCH, DELETE",
		maxAgeSec: "3600",
	}
	for _, o := range origins {
		if o == "*" {
			c.allowAll = true
		}
		c.origins[o] = true
	}
	return c
}

func (c *CORS) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || !strings.HasPrefix(r.URL.Path, c.prefix) {
			next.ServeHTTP(w, r)
			return
		}
		if !c.allowAll && !c.origins[origin] {
			next.ServeHTTP(w, r)
			return
		}

		if c.allowAll {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}

		// Preflight
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.Header().Set("Access-Control-Allow-Methods", c.methods)
			if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
				w.Header().Set("Access-Control-Allow-Headers", reqHeaders)
			}
			w.Header().Set("Access-Control-Max-Age", c.maxAgeSec)
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
