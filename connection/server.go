package connection

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"mysteriogame/config"
	authcontroller "mysteriogame/controller/auth"
	leaderboardcontroller "mysteriogame/controller/leaderboard"
	supportcontroller "mysteriogame/controller/support"
	taskcontroller "mysteriogame/controller/task"
	usercontroller "mysteriogame/controller/user"
	"mysteriogame/logger"
	"mysteriogame/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func StartServer() {
	log, err := logger.InitLogger()
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	fb, err := FBConnection(cfg)
	if err != nil {
		log.Fatal("failed to initialize Firestore client", zap.Error(err))
	}
	log.Info("Firestore connection successful")

	eventsNotifier := services.NewNotifier(cfg.EventsWebhookURL, log)
	supportNotifier := services.NewNotifier(cfg.SupportWebhookURL, log)

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	authcontroller.SignUpController(router, fb, cfg, eventsNotifier)
	authcontroller.SignInController(router, fb, cfg, eventsNotifier)
	authcontroller.GoogleSignInController(router, fb, cfg, eventsNotifier)
	authcontroller.RefreshController(router, fb, cfg)
	authcontroller.SetPasswordController(router, fb)

	usercontroller.UserController(router, fb, cfg)
	usercontroller.UsernameController(router, fb, cfg)

	taskcontroller.CreateTaskController(router, fb)
	taskcontroller.ListTasksController(router, fb, log)
	taskcontroller.VerifyTaskController(router, fb, cfg, eventsNotifier)
	taskcontroller.ApprovalController(router, fb, cfg, eventsNotifier)
	taskcontroller.DeleteTaskController(router, fb)

	leaderboardcontroller.LeaderboardController(router, fb, cfg, log)
	supportcontroller.SupportController(router, supportNotifier)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	sigChan := make(chan os.Signal, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped", zap.Error(err))
			sigChan <- os.Interrupt
		}
	}()
	log.Info("server listening", zap.String("port", cfg.HTTPPort))

	gracefulShutdown(srv, fb, log, sigChan)
}

func gracefulShutdown(srv *http.Server, store io.Closer, log *zap.Logger, sigChan chan os.Signal) {
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if err := store.Close(); err != nil {
		log.Error("firestore close failed", zap.Error(err))
	}
	_ = log.Sync()
}
