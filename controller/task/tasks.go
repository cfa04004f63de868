package task

import (
	"context"
	"io"
	"mysteriogame/dto"
	"mysteriogame/middleware"
	"mysteriogame/model"
	"mysteriogame/services"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
)

func ListTasksController(router *gin.Engine, firestoreClient *firestore.Client, log *zap.Logger) {
	router.GET("/task", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListTasks(c, firestoreClient)
	})
	router.GET("/task/stream", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		StreamTasks(c, firestoreClient, log)
	})
}

func isAdminRequest(c *gin.Context) bool {
	role, _ := c.Get("role")
	r, ok := role.(string)
	return ok && r == "admin"
}

func toTaskResponse(task model.Task, includeCode bool) dto.TaskResponse {
	resp := dto.TaskResponse{
		TaskID:              task.TaskID,
		Heading:             task.Heading,
		Text:                task.Text,
		Season:              task.Season,
		PictureRequired:     task.PictureRequired,
		Status:              task.Status,
		ApprovalSentBy:      task.ApprovalSentBy,
		CompletedBy:         task.CompletedBy,
		CompletedByUsername: task.CompletedByUsername,
	}
	if !task.CompletedAt.IsZero() {
		resp.CompletedAt = task.CompletedAt.Format(time.RFC3339)
	}
	if includeCode {
		resp.VerificationCode = task.VerificationCode
	}
	return resp
}

func ListTasks(c *gin.Context, firestoreClient *firestore.Client) {
	isAdmin := isAdminRequest(c)
	season := c.Query("season")

	ctx := context.Background()
	query := firestoreClient.Collection(services.TasksCollection).Query
	if season != "" {
		query = query.Where("season", "==", season)
	}

	iter := query.Documents(ctx)
	responses := []dto.TaskResponse{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var task model.Task
		if err := doc.DataTo(&task); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse task data"})
			return
		}
		if task.TaskID == "" {
			task.TaskID = doc.Ref.ID
		}
		responses = append(responses, toTaskResponse(task, isAdmin))
	}

	c.JSON(http.StatusOK, responses)
}

// StreamTasks pushes the full task collection over SSE whenever it changes.
// The watcher is torn down when the client disconnects.
func StreamTasks(c *gin.Context, firestoreClient *firestore.Client, log *zap.Logger) {
	isAdmin := isAdminRequest(c)
	ctx := c.Request.Context()

	updates := make(chan []model.Task, 1)
	stop := services.WatchTasks(ctx, firestoreClient, log, func(tasks []model.Task) {
		// keep only the freshest snapshot for a slow client
		select {
		case updates <- tasks:
		default:
			select {
			case <-updates:
			default:
			}
			select {
			case updates <- tasks:
			default:
			}
		}
	})
	defer stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case tasks := <-updates:
			responses := make([]dto.TaskResponse, 0, len(tasks))
			for _, task := range tasks {
				responses = append(responses, toTaskResponse(task, isAdmin))
			}
			c.SSEvent("tasks", responses)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
