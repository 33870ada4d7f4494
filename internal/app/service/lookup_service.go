package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rarango1992/GPAC/internal/common"
	"github.com/rarango1992/GPAC/internal/domain/model"
	"github.com/rarango1992/GPAC/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// LookupService resolves status/priority codes to labels with a
// read-through redis cache in front of the reference tables. Cache errors
// fall through to the store.
type LookupService struct {
	lookupRepo repository.LookupRepository
	rdb        *redis.Client
	ttl        time.Duration
}

func NewLookupService(lookupRepo repository.LookupRepository, rdb *redis.Client, ttl time.Duration) *LookupService {
	return &LookupService{lookupRepo: lookupRepo, rdb: rdb, ttl: ttl}
}

func (s *LookupService) StatusByCode(ctx context.Context, code int) (*model.Status, error) {
	key := fmt.Sprintf("lookup:status:%d", code)
	if cached, ok := getCached[model.Status](ctx, s.rdb, key); ok {
		return cached, nil
	}

	status, err := s.lookupRepo.StatusByCode(ctx, code)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.Errorf("failed to resolve status: %w", err)
	}
	s.setCached(ctx, key, status)
	return status, nil
}

func (s *LookupService) PriorityByLevel(ctx context.Context, level int) (*model.Priority, error) {
	key := fmt.Sprintf("lookup:priority:%d", level)
	if cached, ok := getCached[model.Priority](ctx, s.rdb, key); ok {
		return cached, nil
	}

	priority, err := s.lookupRepo.PriorityByLevel(ctx, level)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.Errorf("failed to resolve priority: %w", err)
	}
	s.setCached(ctx, key, priority)
	return priority, nil
}

func getCached[T any](ctx context.Context, rdb *redis.Client, key string) (*T, bool) {
	if rdb == nil {
		return nil, false
	}
	raw, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, false
	}
	return &value, true
}

func (s *LookupService) setCached(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.rdb.Set(ctx, key, raw, s.ttl)
}
