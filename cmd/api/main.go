package main

import (
	"context"
	"log"

	"github.com/construware/construct-backend/config"
	"github.com/construware/construct-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	sqlDB, err := bootstrap.OpenSQLDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("sql db: %v", err)
	}
	defer sqlDB.Close()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "construct-backend",
		Config:      cfg,
		DB:          db,
		SQLDB:       sqlDB,
		Redis:       rdb,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
