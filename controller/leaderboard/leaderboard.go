package leaderboard

import (
	"context"
	"mysteriogame/config"
	"mysteriogame/dto"
	"mysteriogame/middleware"
	"mysteriogame/model"
	"mysteriogame/services"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
)

func LeaderboardController(router *gin.Engine, firestoreClient *firestore.Client, cfg *config.Config, log *zap.Logger) {
	router.GET("/leaderboard", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetLeaderboard(c, firestoreClient, cfg, log)
	})
}

// GetLeaderboard recomputes the ranking from the full profile set on every
// request. A store failure degrades to an empty board instead of blocking the
// primary workflow.
func GetLeaderboard(c *gin.Context, firestoreClient *firestore.Client, cfg *config.Config, log *zap.Logger) {
	ctx := context.Background()
	iter := firestoreClient.Collection(services.UsersCollection).Documents(ctx)

	var users []model.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Error("leaderboard read failed", zap.Error(err))
			c.JSON(http.StatusOK, []dto.LeaderboardEntry{})
			return
		}

		var user model.User
		if err := doc.DataTo(&user); err != nil {
			log.Error("leaderboard profile parse failed", zap.String("doc", doc.Ref.ID), zap.Error(err))
			continue
		}
		users = append(users, user)
	}

	ranked := services.RankUsers(users, []string{cfg.AdminEmail})
	entries := make([]dto.LeaderboardEntry, 0, len(ranked))
	for _, u := range ranked {
		entries = append(entries, dto.LeaderboardEntry{
			Username:       u.Username,
			CompletedTasks: u.CompletedTasks,
		})
	}

	c.JSON(http.StatusOK, entries)
}
