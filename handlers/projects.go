package handlers

import (
	"folio/database"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const projectNotFound = "Project not found"

// ListProjects returns all projects as a JSON array in ascending id order.
func ListProjects(store database.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		projects, err := store.ListProjects(ctx)
		if err != nil {
			internalError(c, "ListProjects", err)
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

// GetProject returns one project. An id that does not parse as an integer
// cannot match a row and is reported as not found.
func GetProject(store database.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": projectNotFound})
			return
		}

		ctx := c.Request.Context()
		project, found, err := store.GetProject(ctx, projectID)
		if err != nil {
			internalError(c, "GetProject", err)
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"message": projectNotFound})
			return
		}

		c.JSON(http.StatusOK, project)
	}
}
