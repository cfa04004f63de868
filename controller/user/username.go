package user

import (
	"context"
	"mysteriogame/config"
	"mysteriogame/dto"
	"mysteriogame/middleware"
	"mysteriogame/model"
	"mysteriogame/services"
	"net/http"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
)

func UsernameController(router *gin.Engine, firestoreClient *firestore.Client, cfg *config.Config) {
	router.PUT("/user/username", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		SetUsername(c, firestoreClient, cfg)
	})
	router.PUT("/admin/users/:id/username", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(), func(c *gin.Context) {
		AdminUpdateUsername(c, firestoreClient)
	})
}

// SetUsername claims a username against the global normalized-uniqueness
// constraint. The admin identity bypasses validation; re-saving one's own
// username is allowed.
func SetUsername(c *gin.Context, firestoreClient *firestore.Client, cfg *config.Config) {
	userId := c.MustGet("userId").(string)
	email := c.GetString("email")

	var request dto.SetUsernameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := strings.TrimSpace(request.Username)
	if !cfg.IsAdmin(email) {
		if err := services.ValidateUsername(username); err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
	}

	ctx := context.Background()
	normalized := services.NormalizeUsername(username)

	existing, err := services.GetUserByUsername(ctx, firestoreClient, normalized)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	if err == nil {
		var owner model.User
		if err := existing.DataTo(&owner); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
			return
		}
		if !strings.EqualFold(owner.Email, email) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username is already taken"})
			return
		}
	}

	_, err = firestoreClient.Collection(services.UsersCollection).Doc(userId).Set(ctx, map[string]interface{}{
		"username":      username,
		"usernameLower": normalized,
	}, firestore.MergeAll)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set username"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Username saved",
		"username": username,
	})
}

// AdminUpdateUsername is the admin correction path: only non-empty is
// enforced, matching the admin panel's behavior.
func AdminUpdateUsername(c *gin.Context, firestoreClient *firestore.Client) {
	targetID := c.Param("id")

	var request dto.UpdateUsernameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	username := strings.TrimSpace(request.Username)
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username cannot be empty"})
		return
	}

	ctx := context.Background()
	if _, err := services.GetUserByID(ctx, firestoreClient, targetID); err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	_, err := firestoreClient.Collection(services.UsersCollection).Doc(targetID).Update(ctx, []firestore.Update{
		{Path: "username", Value: username},
		{Path: "usernameLower", Value: services.NormalizeUsername(username)},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update username"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Username updated successfully"})
}
