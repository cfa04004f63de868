package task

import (
	"context"
	"mysteriogame/dto"
	"mysteriogame/middleware"
	"mysteriogame/model"
	"mysteriogame/services"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateTaskController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/task", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(), func(c *gin.Context) {
		Createtask(c, firestoreClient)
	})
}

func Createtask(c *gin.Context, firestoreClient *firestore.Client) {
	var taskReq dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	code := strings.TrimSpace(taskReq.VerificationCode)
	// Exactly one completion path: a verification code or a photo submission.
	if taskReq.PictureRequired == (code != "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task needs either a verification code or pictureRequired, not both"})
		return
	}

	taskid := uuid.New().String()

	newtask := model.Task{
		TaskID:           taskid,
		Heading:          strings.TrimSpace(taskReq.Heading),
		Text:             strings.TrimSpace(taskReq.Text),
		Season:           taskReq.Season,
		VerificationCode: code,
		PictureRequired:  taskReq.PictureRequired,
		Status:           model.TaskStatusActive,
		CreatedAt:        time.Now(),
	}

	ctx := context.Background()
	if _, err := firestoreClient.Collection(services.TasksCollection).Doc(taskid).Set(ctx, newtask); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"taskID":  taskid,
	})
}
