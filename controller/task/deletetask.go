package task

import (
	"context"
	"mysteriogame/middleware"
	"mysteriogame/services"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func DeleteTaskController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.DELETE("/task/:id", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(), func(c *gin.Context) {
		Deletetask(c, firestoreClient)
	})
}

// Deletetask removes a task permanently, whatever state it is in.
func Deletetask(c *gin.Context, firestoreClient *firestore.Client) {
	taskID := c.Param("id")
	ctx := context.Background()

	taskRef := firestoreClient.Collection(services.TasksCollection).Doc(taskID)
	if _, err := taskRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if _, err := taskRef.Delete(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
