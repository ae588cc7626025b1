package mailer

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/sirupsen/logrus"
)

// Worker забирает письма из очереди Redis и доставляет их почтовому шлюзу.
// Семантика at-most-once: после исчерпания ретраев письмо логируется и
// отбрасывается, запрос-инициатор об этом не узнает.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.MailTimeout,
		},
	}
}

// Start запускает горутину обработки очереди писем
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting mail worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping mail worker.")
				return
			default:
				// BRPop - блокирующее извлечение из правой части списка,
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, mailQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop mail event from Redis")
					time.Sleep(w.cfg.MailTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event MailEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal mail event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

func (w *Worker) deliver(ctx context.Context, event MailEvent, rawPayload string) {
	log := w.logger.WithField("mail_id", event.ID).WithField("to", event.To)
	log.Debug("Delivering mail event...")

	if w.cfg.MailGatewayURL == "" {
		log.Warn("Mail gateway URL is not configured. Dropping mail event.")
		return
	}

	maxRetries := w.cfg.MailMaxRetries
	baseDelay := w.cfg.MailBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.MailGatewayURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create mail request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Подписываем полезную нагрузку, если задан секрет
		if w.cfg.MailSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.MailSecret)
			req.Header.Set("X-Mail-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send mail. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Mail delivered successfully.")
			return
		}

		log.Warnf("Mail delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2
	}

	log.Errorf("Failed to deliver mail after %d retries. Dropping event.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
