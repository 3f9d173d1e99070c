package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"

	dto "agilefant.com/agilefant/internal/data_models"
)

type RedisAutocompleteCache struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisAutocompleteCache(client rueidis.Client, keyPrefix string, ttl time.Duration) *RedisAutocompleteCache {
	return &RedisAutocompleteCache{
		client: client,
		prefix: keyPrefix,
		ttl:    ttl,
	}
}

func (r *RedisAutocompleteCache) key(kind Kind) string {
	return r.prefix + ":" + string(kind)
}

func (r *RedisAutocompleteCache) Get(ctx context.Context, kind Kind) ([]dto.AutocompleteDataNode, error) {
	cmd := r.client.B().Get().Key(r.key(kind)).Build()
	raw, err := r.client.Do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var nodes []dto.AutocompleteDataNode
	if err := json.Unmarshal([]byte(raw), &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (r *RedisAutocompleteCache) Set(ctx context.Context, kind Kind, nodes []dto.AutocompleteDataNode) error {
	payload, err := json.Marshal(nodes)
	if err != nil {
		return err
	}

	cmd := r.client.B().Set().Key(r.key(kind)).Value(string(payload)).ExSeconds(int64(r.ttl/time.Second)).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisAutocompleteCache) Invalidate(ctx context.Context, kinds ...Kind) error {
	if len(kinds) == 0 {
		return nil
	}
	keys := make([]string, 0, len(kinds))
	for _, k := range kinds {
		keys = append(keys, r.key(k))
	}
	return r.client.Do(ctx, r.client.B().Del().Key(keys...).Build()).Error()
}
