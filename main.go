package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homelearn/config"
	"homelearn/database"
	"homelearn/realtime"
	adminRoutes "homelearn/routers/adminRoutes"
	authRoutes "homelearn/routers/authRoutes"
	courseRoutes "homelearn/routers/courseRoutes"
	friendRoutes "homelearn/routers/friendRoutes"
	userRoutes "homelearn/routers/userRoutes"
	"homelearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Token-bearing API responses must never be cached
	app.Use("/api", func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store")
		c.Set("Vary", "Authorization, Origin")
		return c.Next()
	})

	// Serve uploaded files (profile thumbnails)
	app.Static("/uploads", "./"+config.AppConfig.UploadDir)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   "2.0.0",
		})
	})

	// Realtime channel for level-completion events
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(realtime.Default.Handle))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	friendRoutes.SetupFriendRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.InitializeUploadSweeper()

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutdown signal received, closing gracefully...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
		database.Close()
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal(err)
	}
}
