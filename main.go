package main

import (
	"fmt"
	"log"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/configs"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/middlewares"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedTables(cfg.TableCount); err != nil {
		log.Fatalf("seed tables failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded product images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	port := cfg.Port
	addr := fmt.Sprintf(":%s", port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
