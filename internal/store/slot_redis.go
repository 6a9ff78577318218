// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
)

const redisPingTimeout = 2 * time.Second

// NewConnectRedis builds a redis client and checks that the server answers.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Str("addr", cfg.Addr).Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrSlotUnavailable, err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// redisSlotStorage keeps each slot as a plain string key without expiry.
type redisSlotStorage struct {
	client *redis.Client
}

// NewRedisSlotStorage returns a [SlotStorage] over client.
func NewRedisSlotStorage(client *redis.Client) SlotStorage {
	return &redisSlotStorage{client: client}
}

func (r *redisSlotStorage) Load(ctx context.Context, key string) ([]byte, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrSlotUnavailable, err)
	}
	return payload, nil
}

func (r *redisSlotStorage) Save(ctx context.Context, key string, payload []byte) error {
	if err := r.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSlotUnavailable, err)
	}
	return nil
}

func (r *redisSlotStorage) Close() error {
	return r.client.Close()
}
