package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"drive_service/internal/events"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	assetWriter *kafka.Writer
}

// NewProducer creates a new Kafka producer for the asset changes topic.
func NewProducer(brokers []string) *Producer {
	assetWriter := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        events.AssetChangesTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	return &Producer{
		assetWriter: assetWriter,
	}
}

// PublishAssetEvent publishes an asset event to the asset.changes topic.
func (p *Producer) PublishAssetEvent(ctx context.Context, event *events.AssetEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal asset event: %v", err)
		return err
	}

	message := kafka.Message{
		Key:   []byte(event.AssetID),
		Value: value,
		Time:  event.Timestamp,
	}

	err = p.assetWriter.WriteMessages(ctx, message)
	if err != nil {
		log.Printf("Failed to publish asset event: %v", err)
		return err
	}

	log.Printf("Published asset event: %s for %s %s", event.EventType, event.AssetType, event.AssetID)
	return nil
}

// Close closes the Kafka writer.
func (p *Producer) Close() error {
	if p.assetWriter != nil {
		return p.assetWriter.Close()
	}
	return nil
}
