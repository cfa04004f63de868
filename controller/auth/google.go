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
	"github.com/google/uuid"
)

func GoogleSignInController(router *gin.Engine, firestoreClient *firestore.Client, cfg *config.Config, notifier *services.Notifier) {
	router.POST("/auth/googlelogin", func(c *gin.Context) {
		GoogleSignIn(c, firestoreClient, cfg, notifier)
	})
}

// GoogleSignIn is the federated entry point. New principals get a profile with
// hasPassword pending; an existing email/password account is flagged pending
// too, forcing the set-password step before email login works again.
func GoogleSignIn(c *gin.Context, firestoreClient *firestore.Client, cfg *config.Config, notifier *services.Notifier) {
	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	usersCollection := firestoreClient.Collection(services.UsersCollection)
	query := usersCollection.Where("email", "==", req.Email).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user", "detail": err.Error()})
		return
	}

	var user model.User
	isNewUser := false
	now := time.Now()

	if len(docs) > 0 {
		if err := docs[0].DataTo(&user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
			return
		}
		if user.HasPassword == model.HasPasswordEmail {
			if _, err := docs[0].Ref.Set(ctx, map[string]interface{}{"hasPassword": model.HasPasswordPending}, firestore.MergeAll); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
				return
			}
			user.HasPassword = model.HasPasswordPending
		}
	} else {
		isNewUser = true
		docid := uuid.New().String()
		user = model.User{
			UserID:         docid,
			Email:          req.Email,
			Username:       "",
			UsernameLower:  "",
			CompletedTasks: 0,
			HasPassword:    model.HasPasswordPending,
			CreatedAt:      now,
		}
		if _, err := usersCollection.Doc(docid).Set(ctx, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		notifier.SendAsync(services.AccountCreatedMessage(req.Email, "Google", now))
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

	refreshTokenData := model.TokenResponse{
		UserID:       user.UserID,
		RefreshToken: hashedRefreshToken,
		CreatedAt:    now.Unix(),
		Revoked:      false,
		ExpiresIn:    int64((7 * 24 * time.Hour).Seconds()),
	}
	if _, err := firestoreClient.Collection("refreshTokens").Doc(user.UserID).Set(c, refreshTokenData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Login Successfully",
		"isNewUser":   isNewUser,
		"token":       dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken},
		"hasUsername": user.Username != "",
		"hasPassword": user.HasPassword != model.HasPasswordPending,
		"isAdmin":     role == "admin",
	})
}
