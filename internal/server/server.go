package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskflow/internal/auth"
	"taskflow/internal/config"
	"taskflow/internal/handler"
	"taskflow/internal/middleware"
	"taskflow/internal/repository"
	"taskflow/internal/service"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	log.Println("Connected to database")

	// Setup Gin
	r := gin.Default()
	r.Use(middleware.RequestID())

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiryHours)
	resolver := service.NewReferenceResolver(statusRepo, labelRepo, userRepo)
	taskService := service.NewTaskService(taskRepo, resolver)
	statusService := service.NewStatusService(statusRepo)
	labelService := service.NewLabelService(labelRepo)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, tokens)

	if err := Seed(context.Background(), statusRepo, labelRepo, userRepo); err != nil {
		return nil, fmt.Errorf("failed to seed default data: %w", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	statusHandler := handler.NewStatusHandler(statusService)
	labelHandler := handler.NewLabelHandler(labelService)
	taskHandler := handler.NewTaskHandler(taskService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	r.POST("/api/login", authHandler.Login)
	r.POST("/api/users", userHandler.Create)

	// Protected routes - require authentication
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Task routes
		api.GET("/tasks", taskHandler.List)
		api.GET("/tasks/:id", taskHandler.GetByID)
		api.POST("/tasks", taskHandler.Create)
		api.PUT("/tasks/:id", taskHandler.Update)
		api.DELETE("/tasks/:id", taskHandler.Delete)

		// Status routes
		api.GET("/statuses", statusHandler.List)
		api.GET("/statuses/:id", statusHandler.GetByID)
		api.POST("/statuses", statusHandler.Create)
		api.PUT("/statuses/:id", statusHandler.Update)
		api.DELETE("/statuses/:id", statusHandler.Delete)

		// Label routes
		api.GET("/labels", labelHandler.List)
		api.GET("/labels/:id", labelHandler.GetByID)
		api.POST("/labels", labelHandler.Create)
		api.PUT("/labels/:id", labelHandler.Update)
		api.DELETE("/labels/:id", labelHandler.Delete)

		// User routes
		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.GetByID)
		api.PUT("/users/:id", userHandler.Update)
		api.DELETE("/users/:id", userHandler.Delete)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %s", err)
	}

	log.Println("Server exited properly")
}
