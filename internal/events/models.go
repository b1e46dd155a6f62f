package events

import (
	"time"

	"github.com/google/uuid"
)

// AssetEvent represents a change to a folder or file.
type AssetEvent struct {
	EventType string    `json:"eventType"`
	AssetType string    `json:"assetType"`
	AssetID   string    `json:"assetId"`
	OwnerID   string    `json:"ownerId"`
	Timestamp time.Time `json:"timestamp"`
}

// NewAssetEvent creates a new asset event.
func NewAssetEvent(eventType, assetType string, assetID, ownerID uuid.UUID) *AssetEvent {
	return &AssetEvent{
		EventType: eventType,
		AssetType: assetType,
		AssetID:   assetID.String(),
		OwnerID:   ownerID.String(),
		Timestamp: time.Now(),
	}
}
