package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const draftTTL = 24 * time.Hour

// RedisDraftStore keeps estimates in Redis for a day
type RedisDraftStore struct {
	redis *redis.Client
	ttl   time.Duration
}

var _ DraftStore = (*RedisDraftStore)(nil)

func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{redis: client, ttl: draftTTL}
}

func draftKey(id string) string {
	return fmt.Sprintf("estimate:draft:%s", id)
}

// Save stores a copy of est under a new id
func (s *RedisDraftStore) Save(ctx context.Context, est *Estimate) (string, error) {
	id := uuid.NewString()
	stored := *est
	stored.EstimateID = id

	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.redis.Set(ctx, draftKey(id), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to save draft to Redis: %w", err)
	}
	return id, nil
}

// Get loads a draft saved within the TTL
func (s *RedisDraftStore) Get(ctx context.Context, id string) (*Estimate, error) {
	data, err := s.redis.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var est Estimate
	if err := json.Unmarshal(data, &est); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &est, nil
}
