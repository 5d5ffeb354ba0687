package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	eventProductUpserted    = "product_upserted"
	eventProductDeleted     = "product_deleted"
	eventOrderCreated       = "order_created"
	eventOrderStatusUpdated = "order_status_updated"
	eventReviewAdded        = "review_added"
)

func publishEvent(publisher EventPublisher, eventType string, key string, data interface{}) error {
	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = publisher.Publish(jsonMsg, key)
		if err == nil {
			break
		}
		log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
		time.Sleep(time.Second * time.Duration(i+1)) // Exponential backoff
	}

	if err != nil {
		return fmt.Errorf("failed to write Kafka message after %d attempts: %w", maxRetries, err)
	}

	return nil
}
