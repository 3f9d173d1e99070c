package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"agilefant.com/agilefant/internal/cache"
	dto "agilefant.com/agilefant/internal/data_models"
)

type autocompleteBuilder interface {
	ConstructUserAutocompleteData(ctx context.Context) ([]dto.AutocompleteDataNode, error)
	ConstructTeamAutocompleteData(ctx context.Context) ([]dto.AutocompleteDataNode, error)
}

// AutocompleteService serves autocomplete lists, reading through an
// optional cache. A nil cache means every call assembles fresh data.
type AutocompleteService struct {
	builder autocompleteBuilder
	cache   cache.AutocompleteCache
}

func NewAutocompleteService(builder autocompleteBuilder, c cache.AutocompleteCache) *AutocompleteService {
	return &AutocompleteService{builder: builder, cache: c}
}

func (s *AutocompleteService) Users(ctx context.Context) ([]dto.AutocompleteDataNode, error) {
	return s.get(ctx, cache.KindUsers)
}

func (s *AutocompleteService) Teams(ctx context.Context) ([]dto.AutocompleteDataNode, error) {
	return s.get(ctx, cache.KindTeams)
}

func (s *AutocompleteService) get(ctx context.Context, kind cache.Kind) ([]dto.AutocompleteDataNode, error) {
	if s.cache != nil {
		nodes, err := s.cache.Get(ctx, kind)
		if err == nil {
			return nodes, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("autocomplete cache: read %s failed: %v", kind, err)
		}
	}
	return s.refresh(ctx, kind)
}

// Refresh rebuilds every list concurrently and stores it in the cache.
func (s *AutocompleteService) Refresh(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, kind := range cache.Kinds() {
		g.Go(func() error {
			if _, err := s.refresh(ctx, kind); err != nil {
				return fmt.Errorf("refresh %s: %w", kind, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Invalidate drops every cached list. It is a no-op without a cache.
func (s *AutocompleteService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, cache.Kinds()...)
}

func (s *AutocompleteService) refresh(ctx context.Context, kind cache.Kind) ([]dto.AutocompleteDataNode, error) {
	var (
		nodes []dto.AutocompleteDataNode
		err   error
	)
	switch kind {
	case cache.KindTeams:
		nodes, err = s.builder.ConstructTeamAutocompleteData(ctx)
	default:
		nodes, err = s.builder.ConstructUserAutocompleteData(ctx)
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, kind, nodes); err != nil {
			log.Printf("autocomplete cache: write %s failed: %v", kind, err)
		}
	}
	return nodes, nil
}
