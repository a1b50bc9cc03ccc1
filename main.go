package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mohvmedezzvt/task-manager/config"
	"github.com/mohvmedezzvt/task-manager/handlers"
	"github.com/mohvmedezzvt/task-manager/logging"
	"github.com/mohvmedezzvt/task-manager/middleware"
	"github.com/mohvmedezzvt/task-manager/repositories"
	"github.com/mohvmedezzvt/task-manager/services"
	"github.com/mohvmedezzvt/task-manager/utils"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Task Manager API...")

	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB.")

	db := client.Database(cfg.MongoDBName)
	taskRepo := repositories.NewMongoTaskRepository(db.Collection("tasks"))
	userRepo := repositories.NewMongoUserRepository(db.Collection("users"))
	projectRepo := repositories.NewMongoProjectRepository(db.Collection("projects"))
	notificationRepo := repositories.NewMongoNotificationRepository(db.Collection("notifications"))

	notificationsBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "notifications-cb",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	jwtManager := utils.NewJWTManager(cfg.JWTSecret)

	notificationService := services.NewNotificationService(notificationRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, notificationService, notificationsBreaker)
	userService := services.NewUserService(userRepo, jwtManager)
	projectService := services.NewProjectService(projectRepo, userRepo)

	router := handlers.NewRouter(handlers.RouterConfig{
		Tasks:         handlers.NewTaskHandler(taskService, projectService),
		Projects:      handlers.NewProjectHandler(projectService),
		Users:         handlers.NewUserHandler(userService),
		Login:         handlers.NewLoginHandler(userService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Auth:          middleware.JWTAuth(jwtManager),
	})

	serverAddress := fmt.Sprintf(":%s", cfg.ServerPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, enableCORS(router)); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
