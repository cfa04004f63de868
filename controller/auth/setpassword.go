package auth

import (
	"context"
	"mysteriogame/dto"
	"mysteriogame/middleware"
	"mysteriogame/model"
	"mysteriogame/services"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func SetPasswordController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.PUT("/auth/password", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		SetPassword(c, firestoreClient)
	})
}

// SetPassword establishes a password credential for a federated account and
// flips the hasPassword sentinel so the login redirect gates stop routing the
// user to the set-password view.
func SetPassword(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	var request dto.SetPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(request.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	ctx := context.Background()
	_, err = firestoreClient.Collection(services.UsersCollection).Doc(userId).Update(ctx, []firestore.Update{
		{Path: "password", Value: string(hashedPassword)},
		{Path: "hasPassword", Value: model.HasPasswordSet},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password set successfully"})
}
