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

func ApprovalController(router *gin.Engine, firestoreClient *firestore.Client, cfg *config.Config, notifier *services.Notifier) {
	router.POST("/task/:id/approval", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		RequestApproval(c, firestoreClient, cfg, notifier)
	})

	admin := router.Group("/task", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/:id/approve", func(c *gin.Context) {
			ApproveTask(c, firestoreClient, cfg, notifier)
		})
		admin.POST("/:id/reject", func(c *gin.Context) {
			RejectTask(c, firestoreClient, cfg)
		})
	}
}

func getTask(ctx context.Context, tx *firestore.Transaction, taskRef *firestore.DocumentRef) (*model.Task, error) {
	taskDoc, err := tx.Get(taskRef)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.Wrap(services.ErrNotFound, "task not found")
		}
		return nil, errors.Wrap(services.ErrExternal, err.Error())
	}
	var task model.Task
	if err := taskDoc.DataTo(&task); err != nil {
		return nil, errors.Wrap(services.ErrExternal, "failed to parse task data")
	}
	return &task, nil
}

// RequestApproval moves a picture task into waiting_for_approval after the
// submitter confirms the photo went out through the side channel.
func RequestApproval(c *gin.Context, firestoreClient *firestore.Client, cfg *config.Config, notifier *services.Notifier) {
	userId := c.MustGet("userId").(string)
	taskID := c.Param("id")

	var request dto.RequestApprovalRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
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
	var updated model.Task

	err = firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		task, err := getTask(ctx, tx, taskRef)
		if err != nil {
			return err
		}
		if err := services.RequestApproval(task, actor, request.Confirmed); err != nil {
			return err
		}
		updated = *task
		return tx.Set(taskRef, *task)
	})
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	notifier.SendAsync(services.ApprovalSubmittedMessage(updated.Heading, actor.Username, time.Now()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Approval request submitted",
		"taskID":  taskID,
	})
}

// ApproveTask resolves the waiting submitter by normalized username and
// completes the task on their behalf. Submitter resolution happens before the
// transaction; the transaction re-checks that the same submitter is still
// waiting, so approval and increment stay atomic.
func ApproveTask(c *gin.Context, firestoreClient *firestore.Client, cfg *config.Config, notifier *services.Notifier) {
	userId := c.MustGet("userId").(string)
	adminEmail := c.GetString("email")
	taskID := c.Param("id")

	actor := services.Actor{
		UID:     userId,
		Email:   adminEmail,
		IsAdmin: cfg.IsAdmin(adminEmail),
	}

	ctx := context.Background()
	taskRef := firestoreClient.Collection(services.TasksCollection).Doc(taskID)

	taskDoc, err := taskRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var current model.Task
	if err := taskDoc.DataTo(&current); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse task data"})
		return
	}
	if current.Status != model.TaskStatusWaitingForApproval {
		c.JSON(http.StatusConflict, gin.H{"error": "Task is not waiting for approval"})
		return
	}

	submitterSnap, err := services.GetUserByUsername(ctx, firestoreClient, services.NormalizeUsername(current.ApprovalSentBy))
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	var submitter model.User
	if err := submitterSnap.DataTo(&submitter); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
		return
	}

	var completed model.Task
	err = firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		task, err := getTask(ctx, tx, taskRef)
		if err != nil {
			return err
		}
		if services.NormalizeUsername(task.ApprovalSentBy) != submitter.UsernameLower {
			return errors.Wrap(services.ErrConflict, "submitter changed while approving")
		}
		if err := services.Approve(task, actor, &submitter, time.Now()); err != nil {
			return err
		}
		if err := tx.Set(taskRef, *task); err != nil {
			return err
		}
		completed = *task
		return tx.Update(submitterSnap.Ref, []firestore.Update{
			{Path: "completedTasks", Value: firestore.Increment(1)},
		})
	})
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	notifier.SendAsync(services.TaskCompletedMessage(completed.Heading, submitter.Username, time.Now()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Task approved and completed",
		"taskID":  taskID,
	})
}

// RejectTask returns a waiting task to active and clears the submitter.
func RejectTask(c *gin.Context, firestoreClient *firestore.Client, cfg *config.Config) {
	userId := c.MustGet("userId").(string)
	adminEmail := c.GetString("email")
	taskID := c.Param("id")

	actor := services.Actor{
		UID:     userId,
		Email:   adminEmail,
		IsAdmin: cfg.IsAdmin(adminEmail),
	}

	ctx := context.Background()
	taskRef := firestoreClient.Collection(services.TasksCollection).Doc(taskID)

	err := firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		task, err := getTask(ctx, tx, taskRef)
		if err != nil {
			return err
		}
		if err := services.Reject(task, actor); err != nil {
			return err
		}
		return tx.Set(taskRef, *task)
	})
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Submission rejected, task is active again",
		"taskID":  taskID,
	})
}
