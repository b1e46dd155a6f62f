package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"drive_service/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const metadataTTL = time.Hour

type Service struct {
	client *redis.Client
}

// NewService creates a new Redis service. Returns nil when Redis is
// unreachable so callers can run without the cache.
func NewService(addr, password string, db int) *Service {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		return nil
	}

	log.Println("Successfully connected to Redis")
	return &Service{client: client}
}

// Folder Metadata Cache Methods

func (s *Service) SetFolderMetadata(ctx context.Context, folder *models.Folder) error {
	key := fmt.Sprintf("folder:%s:meta", folder.ID)

	data, err := json.Marshal(folder)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, key, data, metadataTTL).Err(); err != nil {
		log.Printf("Failed to cache folder %s: %v", folder.ID, err)
		return err
	}
	return nil
}

func (s *Service) GetFolderMetadata(ctx context.Context, folderID uuid.UUID) (*models.Folder, error) {
	key := fmt.Sprintf("folder:%s:meta", folderID)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		log.Printf("Failed to get folder %s from cache: %v", folderID, err)
		return nil, err
	}

	var folder models.Folder
	if err := json.Unmarshal(data, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

func (s *Service) InvalidateFolderMetadata(ctx context.Context, folderID uuid.UUID) error {
	key := fmt.Sprintf("folder:%s:meta", folderID)

	if err := s.client.Del(ctx, key).Err(); err != nil {
		log.Printf("Failed to invalidate folder %s: %v", folderID, err)
		return err
	}
	return nil
}

// File Metadata Cache Methods

// cachedFile carries the blob path explicitly, since models.File hides it
// from API JSON.
type cachedFile struct {
	models.File
	Path string `json:"path"`
}

func (s *Service) SetFileMetadata(ctx context.Context, file *models.File) error {
	key := fmt.Sprintf("file:%s:meta", file.ID)

	data, err := json.Marshal(cachedFile{File: *file, Path: file.Path})
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, key, data, metadataTTL).Err(); err != nil {
		log.Printf("Failed to cache file %s: %v", file.ID, err)
		return err
	}
	return nil
}

func (s *Service) GetFileMetadata(ctx context.Context, fileID uuid.UUID) (*models.File, error) {
	key := fmt.Sprintf("file:%s:meta", fileID)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		log.Printf("Failed to get file %s from cache: %v", fileID, err)
		return nil, err
	}

	var cached cachedFile
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	file := cached.File
	file.Path = cached.Path
	return &file, nil
}

func (s *Service) InvalidateFileMetadata(ctx context.Context, fileID uuid.UUID) error {
	key := fmt.Sprintf("file:%s:meta", fileID)

	if err := s.client.Del(ctx, key).Err(); err != nil {
		log.Printf("Failed to invalidate file %s: %v", fileID, err)
		return err
	}
	return nil
}

// Close closes the Redis connection.
func (s *Service) Close() error {
	return s.client.Close()
}
