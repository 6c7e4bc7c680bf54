package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/receipt"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"
)

func main() {
	_ = godotenv.Load() // .env is optional

	cfg := config.Load()

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderLine{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	receipts := receipt.NewGenerator(cfg.ReceiptsDir, cfg.PublicBaseURL, cfg.LogoPath)

	authUC := usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator(userRepo))
	checkoutUC := usecase.NewCheckoutUsecase(txManager, receipts)
	productUC := usecase.NewProductUsecase(productRepo)

	authH := handler.NewAuthHandler(authUC)
	userH := handler.NewUserHandler(authUC)
	orderH := handler.NewOrderHandler(checkoutUC)
	productH := handler.NewProductHandler(productUC)

	e := server.New(cfg, authH, userH, orderH, productH)

	log.Infof("listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
