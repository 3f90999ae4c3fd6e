package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/franchise-api/backend/internal/config"
	"github.com/franchise-api/backend/internal/db"
	"github.com/franchise-api/backend/internal/db/mongostore"
	"github.com/franchise-api/backend/internal/handler"
	"github.com/franchise-api/backend/internal/model"
	"github.com/franchise-api/backend/internal/service"
)

// @title Franchise API
// @version 1.0
// @description Franchise, branch and product management with token-based authentication.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	ctx := context.Background()

	store, err := newStore(ctx, cfg)
	if err != nil {
		logger.Error("store init failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		logger.Error("schema init failed", "error", err)
		os.Exit(1)
	}

	codec, err := service.NewTokenCodec(cfg.Security.JWTSecret, cfg.Security.JWTValidity)
	if err != nil {
		logger.Error("token codec init failed", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(store, codec)
	resetService := service.NewPasswordResetService(store, logger)
	userService := service.NewUserService(store)
	franchiseService := service.NewFranchiseService(store)

	if err := seedUsers(ctx, userService, cfg.Seed); err != nil {
		logger.Error("seeding bootstrap accounts failed", "error", err)
		os.Exit(1)
	}

	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/", handler.Root)
	router.GET("/healthz", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	authHandler := handler.NewAuthHandler(authService, resetService)
	userHandler := handler.NewUserHandler(userService)
	franchiseHandler := handler.NewFranchiseHandler(franchiseService)

	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/validate-reset-token", authHandler.ValidateResetToken)
		auth.POST("/reset-password", authHandler.ResetPassword)
		auth.POST("/change-password", handler.AuthMiddleware(codec), authHandler.ChangePassword)
	}

	users := router.Group("/api/v1/users", handler.AuthMiddleware(codec), handler.RequireRole(model.RoleAdmin))
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.PATCH("/:id/status", userHandler.UpdateStatus)
		users.POST("/:id/reset-password", userHandler.AdminResetPassword)
		users.DELETE("/:id", userHandler.Delete)
	}

	franchises := router.Group("/api/v1/franchises", handler.AuthMiddleware(codec))
	{
		franchises.POST("", franchiseHandler.Create)
		franchises.GET("", franchiseHandler.List)
		franchises.GET("/:franchiseId", franchiseHandler.Get)
		franchises.PATCH("/:franchiseId/name", franchiseHandler.UpdateName)
		franchises.PATCH("/:franchiseId/status", franchiseHandler.UpdateStatus)
		franchises.DELETE("/:franchiseId", franchiseHandler.Delete)
		franchises.GET("/:franchiseId/top-products", franchiseHandler.TopProducts)

		franchises.POST("/:franchiseId/branches", franchiseHandler.AddBranch)
		franchises.PATCH("/:franchiseId/branches/:branchId/name", franchiseHandler.UpdateBranchName)
		franchises.PATCH("/:franchiseId/branches/:branchId/status", franchiseHandler.UpdateBranchStatus)
		franchises.DELETE("/:franchiseId/branches/:branchId", franchiseHandler.DeleteBranch)

		franchises.POST("/:franchiseId/branches/:branchId/products", franchiseHandler.AddProduct)
		franchises.PATCH("/:franchiseId/branches/:branchId/products/:productId/name", franchiseHandler.UpdateProductName)
		franchises.PATCH("/:franchiseId/branches/:branchId/products/:productId/stock", franchiseHandler.UpdateProductStock)
		franchises.DELETE("/:franchiseId/branches/:branchId/products/:productId", franchiseHandler.DeleteProduct)
	}

	logger.Info("server starting", "port", cfg.Server.Port, "store", cfg.Store.Driver)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newStore(ctx context.Context, cfg config.Config) (db.Store, error) {
	switch strings.ToLower(cfg.Store.Driver) {
	case "postgres":
		return db.NewPostgres(ctx)
	case "mongo":
		return mongostore.NewStore(cfg.Mongo.URI, cfg.Mongo.Database)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (expected postgres or mongo)", cfg.Store.Driver)
	}
}

func seedUsers(ctx context.Context, users *service.UserService, seed config.SeedConfig) error {
	if err := users.EnsureSeedUser(ctx, seed.AdminUsername, seed.AdminPassword,
		"Administrator", "admin@franchise.local",
		[]model.Role{model.RoleAdmin, model.RoleUser}); err != nil {
		return err
	}
	return users.EnsureSeedUser(ctx, seed.AnalystUsername, seed.AnalystPassword,
		"Operations Analyst", "analyst@franchise.local",
		[]model.Role{model.RoleUser})
}
