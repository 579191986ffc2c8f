package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"matrimony/config"
	"matrimony/database"
	"matrimony/routers"
	"matrimony/utils"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.ConnectDb(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	if cfg.AutoMigrate {
		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("%v", err)
		}
	}

	store, err := utils.NewFileStore(cfg.UploadRoot)
	if err != nil {
		log.Fatalf("Failed to prepare upload folders: %v", err)
	}

	app := routers.NewApp(routers.Dependencies{Db: db, Config: cfg, Store: store})

	janitor, err := utils.InitializeUploadJanitor(db, store, cfg.JanitorSchedule, cfg.JanitorGrace)
	if err != nil {
		log.Fatalf("Failed to start upload janitor: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		if janitor != nil {
			<-janitor.Stop().Done()
		}
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
