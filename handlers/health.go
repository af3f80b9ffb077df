package handlers

import (
	"context"
	"folio/middleware"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready fails with 503 when the store does not answer within two seconds.
func Ready(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.Printf("Ready: request_id=%s error=%v", middleware.GetRequestID(c), err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": "database unreachable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

// internalError logs err and answers with an opaque 500.
func internalError(c *gin.Context, op string, err error) {
	log.Printf("%s: request_id=%s error=%v", op, middleware.GetRequestID(c), err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
}
