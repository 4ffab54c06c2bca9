package main

import (
	"log"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"

	"github.com/infogen87/myportfolio/internal/api"
	"github.com/infogen87/myportfolio/internal/config"
	"github.com/infogen87/myportfolio/internal/db"
	"github.com/infogen87/myportfolio/internal/repository"
	"github.com/infogen87/myportfolio/internal/service"
	"github.com/infogen87/myportfolio/internal/token"
)

func main() {
	cfg := config.Load()

	gormDB, err := db.Connect(cfg.DB.ConnString)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	m := gormigrate.New(gormDB, gormigrate.DefaultOptions, db.Migrations())
	if err := m.Migrate(); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	tokens, err := token.New(cfg.JWT.Secret, cfg.JWT.Algorithm, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	userRepo := repository.NewUserRepo(gormDB)
	projectRepo := repository.NewProjectRepo(gormDB)
	skillRepo := repository.NewSkillRepo(gormDB)

	authSvc := service.NewAuthService(userRepo, tokens)
	projectSvc := service.NewProjectService(projectRepo)
	skillSvc := service.NewSkillService(skillRepo)

	h := api.NewHandler(authSvc, projectSvc, skillSvc, cfg.DefaultOwnerID)
	r := api.NewRouter(h, cfg.AllowOrigins)

	log.Printf("portfolio API listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
