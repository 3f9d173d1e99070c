package services

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"agilefant.com/agilefant/internal/cache"
	dto "agilefant.com/agilefant/internal/data_models"
	model "agilefant.com/agilefant/internal/models"
)

type mockProjectBusiness struct{ mock.Mock }

func (m *mockProjectBusiness) GetAssignedUsers(ctx context.Context, project *model.Project) ([]model.User, error) {
	args := m.Called(ctx, project)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

// stubBacklogs resolves loaded backlogs directly and bare iterations from
// a map keyed by iteration id.
type stubBacklogs struct {
	byIteration map[uint]*model.Project
}

func (s *stubBacklogs) OwningProject(ctx context.Context, backlog model.Backlog) (*model.Project, error) {
	if backlog == nil {
		return nil, nil
	}
	if project := backlog.OwningProject(); project != nil {
		return project, nil
	}
	return s.byIteration[backlog.BacklogID()], nil
}

type mockStoryBusiness struct{ mock.Mock }

func (m *mockStoryBusiness) GetStorysProjectResponsibles(ctx context.Context, story *model.Story) ([]model.User, error) {
	args := m.Called(ctx, story)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

type mockHourEntryBusiness struct{ mock.Mock }

func (m *mockHourEntryBusiness) CalculateSum(entries []model.HourEntry) int64 {
	return m.Called(entries).Get(0).(int64)
}

type mockUserLister struct{ mock.Mock }

func (m *mockUserLister) RetrieveAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

type mockTeamLister struct{ mock.Mock }

func (m *mockTeamLister) RetrieveAll(ctx context.Context) ([]model.Team, error) {
	args := m.Called(ctx)
	teams, _ := args.Get(0).([]model.Team)
	return teams, args.Error(1)
}

// stubEntryStore serves hour entries from maps; unknown parents have none.
type stubEntryStore struct {
	byTask  map[uint][]model.HourEntry
	byStory map[uint][]model.HourEntry
	err     error
}

func (s *stubEntryStore) RetrieveByTask(ctx context.Context, task *model.Task) ([]model.HourEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byTask[task.ID], nil
}

func (s *stubEntryStore) RetrieveByStory(ctx context.Context, story *model.Story) ([]model.HourEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byStory[story.ID], nil
}

// mockAutocompleteCache is a simple in-memory cache for testing
type mockAutocompleteCache struct {
	mu      sync.Mutex
	entries map[cache.Kind][]dto.AutocompleteDataNode
	getErr  error
	sets    int
}

func newMockAutocompleteCache() *mockAutocompleteCache {
	return &mockAutocompleteCache{entries: map[cache.Kind][]dto.AutocompleteDataNode{}}
}

func (m *mockAutocompleteCache) Get(ctx context.Context, kind cache.Kind) ([]dto.AutocompleteDataNode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return nil, m.getErr
	}
	nodes, ok := m.entries[kind]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return nodes, nil
}

func (m *mockAutocompleteCache) Set(ctx context.Context, kind cache.Kind, nodes []dto.AutocompleteDataNode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[kind] = nodes
	m.sets++
	return nil
}

func (m *mockAutocompleteCache) Invalidate(ctx context.Context, kinds ...cache.Kind) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range kinds {
		delete(m.entries, k)
	}
	return nil
}

func (m *mockAutocompleteCache) setCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}
