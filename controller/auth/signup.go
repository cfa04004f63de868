package auth

import (
	"context"
	"errors"
	"mysteriogame/config"
	"mysteriogame/dto"
	"mysteriogame/model"
	"mysteriogame/services"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func SignUpController(router *gin.Engine, firestoreClient *firestore.Client, cfg *config.Config, notifier *services.Notifier) {
	router.POST("/auth/signup", func(c *gin.Context) {
		Signup(c, firestoreClient, cfg, notifier)
	})
}

func Signup(c *gin.Context, firestoreClient *firestore.Client, cfg *config.Config, notifier *services.Notifier) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := isValidEmail(request.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(request.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		return
	}

	ctx := context.Background()
	exists, err := services.UserExists(ctx, firestoreClient, request.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing email"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	docid := uuid.New().String()
	now := time.Now()

	newUser := model.User{
		UserID:         docid,
		Email:          request.Email,
		Password:       string(hashedPassword),
		Username:       "",
		UsernameLower:  "",
		CompletedTasks: 0,
		HasPassword:    model.HasPasswordEmail,
		CreatedAt:      now,
	}

	if _, err := firestoreClient.Collection(services.UsersCollection).Doc(docid).Set(ctx, newUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	notifier.SendAsync(services.AccountCreatedMessage(request.Email, "Email/Password", now))

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"docID":   docid,
	})
}

func isValidEmail(email string) error {
	const emailRegex = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	re := regexp.MustCompile(emailRegex)
	if !re.MatchString(email) {
		return errors.New("invalid email format")
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return errors.New("invalid email structure")
	}

	// MX check keeps throwaway domains out
	mxRecords, err := net.LookupMX(parts[1])
	if err != nil || len(mxRecords) == 0 {
		return errors.New("email domain does not have valid MX records")
	}

	return nil
}
