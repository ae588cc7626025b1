package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	mailQueueKey = "mail_events"
)

// MailEvent - письмо, поставленное в очередь на отправку
type MailEvent struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher - интерфейс для постановки писем в очередь.
// Доставка best-effort: вызывающий не ждет и не видит сбоев доставки.
type Publisher interface {
	Publish(ctx context.Context, event MailEvent) error
}

// RedisMailPublisher - реализация Publisher поверх списка Redis
type RedisMailPublisher struct {
	redisClient *redis.Client
}

// NewRedisMailPublisher создает новый RedisMailPublisher
func NewRedisMailPublisher(client *redis.Client) *RedisMailPublisher {
	return &RedisMailPublisher{
		redisClient: client,
	}
}

// Publish кладет письмо в очередь Redis
func (p *RedisMailPublisher) Publish(ctx context.Context, event MailEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal mail event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает BRPop с правой
	if err := p.redisClient.LPush(ctx, mailQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish mail event to Redis: %w", err)
	}
	return nil
}
