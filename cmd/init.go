package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NorthPeak-Exteriors/site-backend/internal/application"
	"github.com/NorthPeak-Exteriors/site-backend/internal/application/commands"
	"github.com/NorthPeak-Exteriors/site-backend/internal/infra/config"
	"github.com/NorthPeak-Exteriors/site-backend/internal/infra/mail"
	"github.com/NorthPeak-Exteriors/site-backend/internal/presentation/rest"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func Init() {
	// .env is optional, deployments normally provide the environment directly
	_ = godotenv.Load()

	// Configs
	serverConfig, err := config.NewServerConfig()
	if err != nil {
		log.Panicf("failed to load server config: %v", err)
	}
	mailConfig, err := mail.NewMailConfig()
	if err != nil {
		log.Panicf("failed to load mail config: %v", err)
	}

	level := slog.LevelInfo
	if serverConfig.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	mailServer := mail.NewMailServer(mailConfig)

	handlers := &application.Collection{
		SubmitContact: commands.NewSubmitContact(mailServer, mailConfig, serverConfig.StrictValidation),
	}
	handler := rest.NewServer(handlers)
	app := fiber.New(fiber.Config{
		IdleTimeout: 5 * time.Second,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     serverConfig.AllowOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))
	rest.RegisterHandlers(app, handler)
	// Static last so /api/contact and /healthz win over the site files.
	// Serves index.html, robots.txt and sitemap.xml at the site root.
	app.Static("/", serverConfig.PublicDir)

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", serverConfig.Port)); err != nil {
			log.Panic(err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	fmt.Println("Gracefully shutting down...")
	_ = app.Shutdown()

	fmt.Println("Fiber was successfully shutdown.")
}
