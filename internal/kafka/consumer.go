package kafka

import (
	"context"
	"encoding/json"
	"log"

	"drive_service/internal/events"
	"drive_service/internal/redis"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	assetReader *kafka.Reader
	cache       *redis.Service
}

// NewConsumer creates a consumer group reader on the asset changes topic.
func NewConsumer(brokers []string, groupID string, cache *redis.Service) *Consumer {
	assetReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   events.AssetChangesTopic,
	})

	return &Consumer{
		assetReader: assetReader,
		cache:       cache,
	}
}

// StartAssetEventConsumer reads asset events until the context is cancelled,
// keeping the metadata cache in sync with deletions and renames.
func (c *Consumer) StartAssetEventConsumer(ctx context.Context) {
	for {
		message, err := c.assetReader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Failed to read asset event: %v", err)
			continue
		}

		var event events.AssetEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Failed to unmarshal asset event: %v", err)
			continue
		}

		if err := c.handleAssetEvent(ctx, &event); err != nil {
			log.Printf("Failed to handle asset event %s: %v", event.EventType, err)
		}
	}
}

func (c *Consumer) handleAssetEvent(ctx context.Context, event *events.AssetEvent) error {
	assetID, err := uuid.Parse(event.AssetID)
	if err != nil {
		log.Printf("Invalid asset ID in event: %s", event.AssetID)
		return err
	}

	switch event.EventType {
	case events.FolderRenamed, events.FolderDeleted:
		return c.cache.InvalidateFolderMetadata(ctx, assetID)
	case events.FileRenamed, events.FileDeleted:
		return c.cache.InvalidateFileMetadata(ctx, assetID)
	}

	return nil
}

// Close closes the Kafka reader.
func (c *Consumer) Close() error {
	if c.assetReader != nil {
		return c.assetReader.Close()
	}
	return nil
}
