package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskboard/internal/application/services"
	"taskboard/internal/config"
	delivery "taskboard/internal/delivery/http"
	"taskboard/internal/infrastructure"
	"taskboard/internal/infrastructure/db"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	log.Println("Database ready")

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret)
	profileCache := infrastructure.NewProfileCache(cfg)
	defer profileCache.Close()

	authService := services.NewAuthService(db.NewUserRepository(gdb), jwtService, profileCache)
	taskService := services.NewTaskService(db.NewTaskRepository(gdb))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(delivery.RequestID())
	delivery.RegisterRoutes(e, delivery.NewHandler(authService, taskService), jwtService)

	log.Printf("Server running at http://localhost:%s", cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
