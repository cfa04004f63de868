package user

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
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func UserController(router *gin.Engine, firestoreClient *firestore.Client, cfg *config.Config) {
	router.GET("/user/profile", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetProfile(c, firestoreClient, cfg)
	})

	admin := router.Group("/admin", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/users", func(c *gin.Context) {
			ListUsers(c, firestoreClient, cfg)
		})
		admin.DELETE("/users/:id", func(c *gin.Context) {
			DeleteUser(c, firestoreClient)
		})
	}
}

func toUserResponse(user model.User, cfg *config.Config) dto.UserResponse {
	return dto.UserResponse{
		UserID:         user.UserID,
		Email:          user.Email,
		Username:       user.Username,
		CompletedTasks: user.CompletedTasks,
		HasUsername:    user.Username != "",
		HasPassword:    user.HasPassword != model.HasPasswordPending,
		IsAdmin:        cfg.IsAdmin(user.Email),
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
}

// GetProfile returns the caller's profile with the flags the client's
// redirect gates need (has-username, has-password, is-admin).
func GetProfile(c *gin.Context, firestoreClient *firestore.Client, cfg *config.Config) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	docSnap, err := services.GetUserByID(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	var user model.User
	if err := docSnap.DataTo(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user, cfg))
}

func ListUsers(c *gin.Context, firestoreClient *firestore.Client, cfg *config.Config) {
	ctx := context.Background()
	iter := firestoreClient.Collection(services.UsersCollection).Documents(ctx)

	responses := []dto.UserResponse{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var user model.User
		if err := doc.DataTo(&user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
			return
		}
		if cfg.IsAdmin(user.Email) {
			continue
		}
		responses = append(responses, toUserResponse(user, cfg))
	}

	c.JSON(http.StatusOK, responses)
}

func DeleteUser(c *gin.Context, firestoreClient *firestore.Client) {
	targetID := c.Param("id")
	ctx := context.Background()

	userDocRef := firestoreClient.Collection(services.UsersCollection).Doc(targetID)
	if _, err := userDocRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if _, err := userDocRef.Delete(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	// Best effort: drop the session record too.
	firestoreClient.Collection("refreshTokens").Doc(targetID).Delete(ctx)

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
