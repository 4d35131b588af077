package main

import (
	"context"
	"log"
	"time"

	"restaurant-backend/config"
	httpapi "restaurant-backend/internal/api/http"
	"restaurant-backend/internal/notify"
	"restaurant-backend/internal/service"
	"restaurant-backend/internal/storage"
)

const confirmationsTopic = "order-confirmations"

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(confirmationsTopic)
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCatalogCache(rdb, 5*time.Minute)
	publisher := storage.NewKafkaConfirmationPublisher(kafkaWriter)
	qrEncoder := service.DefaultQRGenerator{BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost:8080")}

	orderSvc := service.NewOrderService(repo, repo, repo, publisher, qrEncoder)
	reviewSvc := service.NewReviewService(repo, repo, repo)
	dishSvc := service.NewDishService(repo, cache)

	smtpCfg := config.SMTPFromEnv()
	mailer := &notify.SMTPMailer{
		Host:     smtpCfg.Host,
		Port:     smtpCfg.Port,
		Username: smtpCfg.Username,
		Password: smtpCfg.Password,
		From:     smtpCfg.From,
	}
	reader := config.NewKafkaReader(confirmationsTopic, "notification-relay")
	defer reader.Close()
	relay := notify.NewRelay(reader, mailer)
	go relay.Start(context.Background())

	handler := httpapi.NewHandler(orderSvc, reviewSvc, dishSvc)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Getenv("PORT", "8080"), router)
}
