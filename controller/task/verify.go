package task

import (
	"context"
	"mysteriogame/config"
	"mysteriogame/dto"
	"mysteriogame/middleware"
	"mysteriogame/model"
	"mysteriogame/services"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func VerifyTaskController(router *gin.Engine, firestoreClient *firestore.Client, cfg *config.Config, notifier *services.Notifier) {
	router.POST("/task/:id/verify", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		VerifyTask(c, firestoreClient, cfg, notifier)
	})
}

// VerifyTask runs the submit-code transition. The task write and the counter
// increment happen in one transaction that re-reads task status, so a retry or
// a concurrent submission can never complete the same task twice.
func VerifyTask(c *gin.Context, firestoreClient *firestore.Client, cfg *config.Config, notifier *services.Notifier) {
	userId := c.MustGet("userId").(string)
	taskID := c.Param("id")

	var request dto.VerifyTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter the verification code"})
		return
	}

	ctx := context.Background()
	userSnap, err := services.GetUserByID(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	var profile model.User
	if err := userSnap.DataTo(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
		return
	}
	if profile.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Set a username before submitting tasks"})
		return
	}

	actor := services.Actor{
		UID:      userId,
		Email:    profile.Email,
		Username: profile.Username,
		IsAdmin:  cfg.IsAdmin(profile.Email),
	}

	taskRef := firestoreClient.Collection(services.TasksCollection).Doc(taskID)
	var completed model.Task

	err = firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		taskDoc, err := tx.Get(taskRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.Wrap(services.ErrNotFound, "task not found")
			}
			return errors.Wrap(services.ErrExternal, err.Error())
		}
		var task model.Task
		if err := taskDoc.DataTo(&task); err != nil {
			return errors.Wrap(services.ErrExternal, "failed to parse task data")
		}

		if err := services.SubmitCode(&task, actor, request.Code, time.Now()); err != nil {
			return err
		}

		if err := tx.Set(taskRef, task); err != nil {
			return err
		}
		completed = task
		return tx.Update(userSnap.Ref, []firestore.Update{
			{Path: "completedTasks", Value: firestore.Increment(1)},
		})
	})
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	notifier.SendAsync(services.TaskCompletedMessage(completed.Heading, actor.Username, time.Now()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Task verified and completed successfully",
		"taskID":  taskID,
	})
}
