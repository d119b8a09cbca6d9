package service

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library/models"
)

// CacheUserRequest records the request in the activity of the user named by the
// username query parameter. Caching failures never fail the request.
func (s *Service) CacheUserRequest(c *gin.Context) {
	username, ok := c.GetQuery("username")
	if !ok || username == "" {
		c.Next()
		return
	}

	userRequest := models.UserRequest{
		Method: c.Request.Method,
		Route:  c.Request.URL.Path,
	}

	request, err := json.Marshal(userRequest)
	if err == nil {
		err = s.Cacher.Write(username, request)
	}
	if err != nil {
		s.Logger.Warn("failed to cache user request", "username", username, "error", err)
	}

	c.Next()
}

func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info(
			"http_request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// CORS allows every origin.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
