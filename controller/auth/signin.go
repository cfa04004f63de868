package auth

import (
	"context"
	"mysteriogame/config"
	"mysteriogame/dto"
	"mysteriogame/model"
	"mysteriogame/services"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"golang.org/x/crypto/bcrypt"
)

func SignInController(router *gin.Engine, firestoreClient *firestore.Client, cfg *config.Config, notifier *services.Notifier) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, firestoreClient, cfg, notifier)
	})
}

func Signin(c *gin.Context, firestoreClient *firestore.Client, cfg *config.Config, notifier *services.Notifier) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	docSnap, err := services.GetUserByEmail(ctx, firestoreClient, request.Email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account does not exist"})
			return
		}
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	var user model.User
	if err := docSnap.DataTo(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
		return
	}

	if user.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account has no password set. Sign in with Google and set a password first."})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect credentials. Please try again."})
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
	refreshToken, err := services.CreateRefreshToken(user.UserID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}
	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash refresh token"})
		return
	}

	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour).Unix()
	issuedAt := now.Unix()

	refreshTokenData := model.TokenResponse{
		UserID:       user.UserID,
		RefreshToken: hashedRefreshToken,
		CreatedAt:    issuedAt,
		Revoked:      false,
		ExpiresIn:    expiresAt - issuedAt,
	}

	if _, err := firestoreClient.Collection("refreshTokens").Doc(user.UserID).Set(c, refreshTokenData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token", "detail": err.Error()})
		return
	}

	notifier.SendAsync(services.UserLoginMessage(user.Email, now))

	c.JSON(http.StatusOK, gin.H{
		"message":     "Login Successfully",
		"token":       dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken},
		"hasUsername": user.Username != "",
		"hasPassword": user.HasPassword != model.HasPasswordPending,
		"isAdmin":     role == "admin",
	})
}
