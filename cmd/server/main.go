package main

import (
	"github.com/benbeisheim/rulechess-backend/internal/config"
	"github.com/benbeisheim/rulechess-backend/internal/controller"
	"github.com/benbeisheim/rulechess-backend/internal/service"
	"github.com/gofiber/fiber/v2/log"
)

func main() {
	cfg := config.Load()
	log.SetLevel(cfg.LogLevel)

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)

	app := controller.NewApp(gameService, cfg)

	log.Infof("listening on %s", cfg.HTTPAddr)
	log.Fatal(app.Listen(cfg.HTTPAddr))
}
