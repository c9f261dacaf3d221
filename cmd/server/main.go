package main

import (
	"log"
	"net/http"

	"fleetflow/internal/config"
	"fleetflow/internal/logger"
	"fleetflow/internal/middleware"
	"fleetflow/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Environment (fatal without JWT_SECRET / DATABASE_URL)
	cfg := config.MustLoad()

	// Signing key comes from the loaded config, .env included
	middleware.Init(cfg.JWTSecret)

	// Connect to the database
	config.InitDB()

	// Router with recovery and request logging baked in
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
