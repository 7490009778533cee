package main

import (
	"time"

	"github.com/joho/godotenv"

	"github.com/arthurezende/pega-ai/internal/config"
	"github.com/arthurezende/pega-ai/internal/domain/model"
	"github.com/arthurezende/pega-ai/internal/handler"
	"github.com/arthurezende/pega-ai/internal/infra/db"
	infraRepo "github.com/arthurezende/pega-ai/internal/infra/repository"
	"github.com/arthurezende/pega-ai/internal/server"
	"github.com/arthurezende/pega-ai/internal/usecase"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envが無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Establishment{},
		&model.Offer{},
		&model.Order{},
		&model.PaymentRecord{},
		&model.Review{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	offerRepo := infraRepo.NewOfferGormRepository(gormDB)
	establishmentRepo := infraRepo.NewEstablishmentGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}
	codes := &usecase.HashPickupCodeGenerator{}
	settlement := &usecase.InstantSettlement{}

	//Usecase生成
	orderUC := usecase.NewOrderUsecase(txManager, codes, settlement, clock)
	offerUC := usecase.NewOfferUsecase(offerRepo, establishmentRepo, clock)
	profileUC := usecase.NewProfileUsecase(userRepo, establishmentRepo)
	reviewUC := usecase.NewReviewUsecase(txManager, clock)

	//Handler生成
	orderH := handler.NewOrderHandler(orderUC, reviewUC)
	offerH := handler.NewOfferHandler(offerUC)
	pickupH := handler.NewPickupHandler(orderUC)
	profileH := handler.NewProfileHandler(profileUC)

	//Server起動
	addr := ":" + cfg.Port

	if err := server.Start(addr, orderH, offerH, pickupH, profileH); err != nil {
		panic(err)
	}
}
