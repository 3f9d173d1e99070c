package cache

import (
	"context"
	"errors"

	dto "agilefant.com/agilefant/internal/data_models"
)

// Kind names one autocomplete list.
type Kind string

const (
	KindUsers Kind = "users"
	KindTeams Kind = "teams"
)

// Kinds lists every autocomplete list the cache holds.
func Kinds() []Kind {
	return []Kind{KindUsers, KindTeams}
}

// AutocompleteCache stores assembled autocomplete lists between requests.
type AutocompleteCache interface {
	Get(ctx context.Context, kind Kind) ([]dto.AutocompleteDataNode, error)

	Set(ctx context.Context, kind Kind, nodes []dto.AutocompleteDataNode) error

	Invalidate(ctx context.Context, kinds ...Kind) error
}

var ErrCacheMiss = errors.New("autocomplete cache miss")
