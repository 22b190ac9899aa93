package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"auction-engine/internal/config"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Identity headers set by the upstream gateway
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
)

var errMissingIdentity = errors.New("missing " + HeaderUserID + " header")

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	callerID, _ := helpers.Caller(c)
	fields := map[string]any{
		"method":    c.Request.Method,
		"path":      c.Request.URL.Path,
		"status":    c.Writer.Status(),
		"latency":   time.Since(start).String(),
		"caller_id": callerID,
	}
	if c.Writer.Status() >= http.StatusInternalServerError {
		utils.Warn("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}

// IdentityMiddleware resolves the caller from the gateway headers. Requests
// without a user id are rejected before reaching a handler.
func IdentityMiddleware(c *gin.Context) {
	userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
	if userID == "" {
		utils.AbortJSONError(c, http.StatusUnauthorized, errMissingIdentity, helpers.CodeUnauthorized, "caller identity required")
		return
	}

	name := strings.TrimSpace(c.GetHeader(HeaderUserName))
	if name == "" {
		name = userID
	}
	c.Set(helpers.CallerIDKey, userID)
	c.Set(helpers.CallerNameKey, name)
	c.Next()
}

// NewCORSMiddleware allows browser clients from the configured origins
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderUserID, HeaderUserName},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        cfg.MaxAge,
	}
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	}
	utils.Info("CORS middleware initialized", map[string]any{"allow_origins": cfg.AllowOrigins})
	return cors.New(corsCfg)
}
