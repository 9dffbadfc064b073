// Package template serves the singleton message template set with a
// Redis read-through cache.
package template

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/licensure/licensure/internal/model"
)

const cacheKey = "licensure:message_templates"

type templateRepo interface {
	Get(ctx context.Context) (model.TemplateSet, error)
	Update(ctx context.Context, set model.TemplateSet) (model.TemplateSet, error)
}

type cache interface {
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Service reads and updates the template set.
type Service struct {
	repo     templateRepo
	cache    cache
	strategy retry.Strategy
}

// NewService creates a template service.
func NewService(repo templateRepo, c cache, strategy retry.Strategy) *Service {
	return &Service{repo: repo, cache: c, strategy: strategy}
}

// TemplateSet returns the stored template set, preferring the cache.
// Callers that must never fail fall back to model.DefaultTemplateSet
// on error.
func (s *Service) TemplateSet(ctx context.Context) (model.TemplateSet, error) {
	cached, err := s.cache.GetWithRetry(ctx, s.strategy, cacheKey)
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Msg("template cache read failed")
	}
	if err == nil {
		var set model.TemplateSet
		if err := json.Unmarshal([]byte(cached), &set); err == nil {
			return set, nil
		}
		zlog.Logger.Warn().Msg("discarding malformed cached template set")
	}

	set, err := s.repo.Get(ctx)
	if err != nil {
		return model.TemplateSet{}, fmt.Errorf("get templates: %w", err)
	}

	s.fillCache(ctx, set)

	return set, nil
}

// Update stores a new template set and refreshes the cache.
func (s *Service) Update(ctx context.Context, set model.TemplateSet) (model.TemplateSet, error) {
	updated, err := s.repo.Update(ctx, set)
	if err != nil {
		return model.TemplateSet{}, fmt.Errorf("update templates: %w", err)
	}

	s.fillCache(ctx, updated)

	return updated, nil
}

func (s *Service) fillCache(ctx context.Context, set model.TemplateSet) {
	payload, err := json.Marshal(set)
	if err != nil {
		return
	}

	if err := s.cache.SetWithRetry(ctx, s.strategy, cacheKey, string(payload)); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to cache template set")
	}
}
