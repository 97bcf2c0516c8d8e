package main

import (
	"context"
	"log"

	"applicant-portal-be/internal/bootstrap"
	"applicant-portal-be/internal/config"
	"applicant-portal-be/internal/server"
	"applicant-portal-be/internal/tracer"
	"applicant-portal-be/pkg/database"
)

func main() {
	// 0. Initialize tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.PortalService.Close()

	// 4. Initialize and run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
