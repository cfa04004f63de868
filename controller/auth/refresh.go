package auth

import (
	"context"
	"mysteriogame/config"
	"mysteriogame/middleware"
	"mysteriogame/model"
	"mysteriogame/services"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func RefreshController(router *gin.Engine, firestoreClient *firestore.Client, cfg *config.Config) {
	router.POST("/auth/refresh", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		Refresh(c, firestoreClient, cfg)
	})
	router.POST("/auth/signout", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Signout(c, firestoreClient)
	})
}

func Refresh(c *gin.Context, firestoreClient *firestore.Client, cfg *config.Config) {
	userId := c.MustGet("userId").(string)
	refreshToken := c.MustGet("refreshToken").(string)
	ctx := context.Background()

	tokenDoc, err := firestoreClient.Collection("refreshTokens").Doc(userId).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No refresh token on record"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load refresh token"})
		return
	}

	var stored model.TokenResponse
	if err := tokenDoc.DataTo(&stored); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse refresh token record"})
		return
	}

	if stored.Revoked {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token has been revoked"})
		return
	}
	if time.Now().Unix() > stored.CreatedAt+stored.ExpiresIn {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token has expired"})
		return
	}
	if err := services.CompareRefreshToken(stored.RefreshToken, refreshToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token does not match"})
		return
	}

	userSnap, err := services.GetUserByID(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	var user model.User
	if err := userSnap.DataTo(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
		return
	}

	role := "user"
	if cfg.IsAdmin(user.Email) {
		role = "admin"
	}

	accessToken, err := services.CreateAccessToken(user.UserID, user.Email, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

func Signout(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	ctx := context.Background()

	_, err := firestoreClient.Collection("refreshTokens").Doc(userId).Update(ctx, []firestore.Update{
		{Path: "revoked", Value: true},
	})
	if err != nil && status.Code(err) != codes.NotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
