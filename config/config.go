package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// MustInitPostgres opens the backend database and verifies connectivity
// before the server starts taking traffic.
func MustInitPostgres() *sql.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		Getenv("DB_HOST", "localhost"),
		Getenv("DB_PORT", "5432"),
		Getenv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		Getenv("DB_NAME", "restaurant"),
		Getenv("DB_SSLMODE", "disable"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("postgres open failed: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("postgres ping failed: %v", err)
	}

	// The order-insert transaction holds two statements per dish; keep a
	// few idle connections warm for the catalog reads around it.
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db
}

// MustInitRedis connects the catalog cache.
func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: Getenv("REDIS_HOST", "localhost") + ":" + Getenv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("redis ping failed: %v", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{Getenv("KAFKA_BROKER", "localhost:9092")},
		Topic:   topic,
		GroupID: groupID,
	})
}

// NewKafkaWriter keys confirmations by recipient, so the hash balancer
// keeps one user's messages on one partition.
func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(Getenv("KAFKA_BROKER", "localhost:9092")),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
}

// SMTP holds the confirmation relay's mail settings.
type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func SMTPFromEnv() SMTP {
	return SMTP{
		Host:     Getenv("SMTP_HOST", "localhost"),
		Port:     Getenv("SMTP_PORT", "25"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     Getenv("SMTP_FROM", "orders@restaurant-backend.local"),
	}
}

// Getenv returns the variable's value or a fallback when unset.
func Getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
