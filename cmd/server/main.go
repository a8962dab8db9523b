package main

import (
	"log"
	"net/http"

	"mission_mapper/internal/config"
	"mission_mapper/internal/controllers"
	"mission_mapper/internal/logger"
	"mission_mapper/internal/middleware"
	"mission_mapper/internal/routes"
	"mission_mapper/internal/store"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Open the database and migrate the missions table
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	missionStore := store.NewMissionStore(db)
	missionController := controllers.NewMissionController(missionStore)

	// Setup Gin router
	r := routes.SetupRouter(missionController)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	log.Println("🚀 Server running at", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
