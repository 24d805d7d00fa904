package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSOptions configures cross-origin access
type CORSOptions struct {
	// AllowOrigins lists permitted origins; empty permits any origin
	AllowOrigins []string
	// AllowHeaders lists permitted request headers; empty permits whatever a preflight asks for
	AllowHeaders []string
	MaxAge       time.Duration
}

const requestHeadersHeader = "Access-Control-Request-Headers"

// CORS permits cross-origin requests with credentials. With no configured
// origins the request's Origin is echoed back, since a wildcard cannot be
// combined with credentials.
func CORS(opts CORSOptions) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowHeaders:     opts.AllowHeaders,
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           opts.MaxAge,
	}

	if len(opts.AllowOrigins) == 0 {
		config.AllowOriginFunc = func(string) bool { return true }
	} else {
		origins := slices.Clone(opts.AllowOrigins)
		config.AllowOriginFunc = func(origin string) bool {
			return slices.Contains(origins, origin)
		}
	}

	handler := cors.New(config)
	if len(opts.AllowHeaders) > 0 {
		return handler
	}

	// cors leaves Access-Control-Allow-Headers unset without AllowHeaders,
	// so the echoed value survives its preflight response.
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			if requested := c.GetHeader(requestHeadersHeader); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		handler(c)
	}
}
