package handlers

import (
	"folio/database"
	"folio/models"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateMessage stores a contact-form submission.
// Validation failures return 400 with the first offending field.
func CreateMessage(store database.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, models.ValidationError{Message: "Invalid JSON body"})
			return
		}

		req, verr := models.ValidateMessageInput(payload)
		if verr != nil {
			log.Printf("CreateMessage: rejected field=%s reason=%q", verr.Field, verr.Message)
			c.JSON(http.StatusBadRequest, verr)
			return
		}

		ctx := c.Request.Context()
		message, err := store.CreateMessage(ctx, req)
		if err != nil {
			internalError(c, "CreateMessage", err)
			return
		}

		c.JSON(http.StatusCreated, message)
	}
}
