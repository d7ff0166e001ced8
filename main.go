package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"semillero_backend/internals/configs"
	database "semillero_backend/internals/databases"
	middlewares "semillero_backend/internals/middlewares"
	routes "semillero_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	// DB connect + pool + esquema declarativo
	database.ConnectDB()
	database.TunePool()
	if err := database.MigrateAll(database.DB); err != nil {
		log.Fatalf("❌ Falló la migración del esquema: %v", err)
	}

	routes.SetupRoutes(app, database.DB)

	port := configs.GetEnv("PORT", "8000")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("❌ El servidor no pudo arrancar: %v", err)
		}
	}()
	log.Printf("✅ Servidor escuchando en :%s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("⏳ Apagando servidor...")
	if err := app.Shutdown(); err != nil {
		log.Printf("[ERROR] Shutdown: %v", err)
	}
	log.Println("✅ Servidor detenido.")
}
