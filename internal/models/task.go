package model

import (
	"time"

	"gorm.io/gorm"

	"agilefant.com/agilefant/internal/constants"
	apperrors "agilefant.com/agilefant/internal/errors"
)

// Task is a piece of work that is not divided any further. It lives under
// exactly one backlog item: a Story, or an Iteration directly.
type Task struct {
	ID             uint                 `gorm:"primaryKey" json:"id"`
	Name           string               `gorm:"not null" json:"name"`
	Description    string               `json:"description"`
	Status         constants.TaskStatus `gorm:"type:varchar(20);not null;default:NOT_STARTED" json:"status"`
	Priority       constants.Priority   `gorm:"type:varchar(20);not null;default:UNDEFINED" json:"priority"`
	EffortEstimate *int64               `json:"effortEstimate,omitempty"`
	Created        time.Time            `gorm:"autoCreateTime" json:"created"`

	CreatorID  *uint `json:"creatorId,omitempty"`
	Creator    *User `json:"-"`
	AssigneeID *uint `json:"assigneeId,omitempty"`
	Assignee   *User `json:"-"`

	StoryID     *uint      `gorm:"index" json:"storyId,omitempty"`
	Story       *Story     `json:"-"`
	IterationID *uint      `gorm:"index" json:"iterationId,omitempty"`
	Iteration   *Iteration `json:"-"`

	Events       []TaskEvent          `gorm:"constraint:OnDelete:CASCADE" json:"events,omitempty"`
	Watchers     []User               `gorm:"many2many:task_watchers" json:"watchers,omitempty"`
	Practices    []PracticeAllocation `gorm:"constraint:OnDelete:CASCADE" json:"practices,omitempty"`
	Responsibles []User               `gorm:"many2many:task_responsibles" json:"responsibles,omitempty"`
}

type TaskEvent struct {
	ID        uint                    `gorm:"primaryKey" json:"id"`
	TaskID    uint                    `gorm:"not null;index" json:"taskId"`
	CreatorID *uint                   `json:"creatorId,omitempty"`
	Created   time.Time               `gorm:"not null" json:"created"`
	EventType constants.TaskEventType `gorm:"type:varchar(20);not null" json:"eventType"`
	Effort    int64                   `json:"effort"`
	Comment   string                  `json:"comment,omitempty"`
}

func (t *Task) BeforeSave(tx *gorm.DB) error {
	return t.ValidateParent()
}

// ValidateParent reports whether the task sits under exactly one of a
// story or an iteration.
func (t *Task) ValidateParent() error {
	hasStory := t.StoryID != nil || t.Story != nil
	hasIteration := t.IterationID != nil || t.Iteration != nil
	if hasStory == hasIteration {
		return apperrors.ErrInvalidTaskParent
	}
	return nil
}

// BacklogItem returns the Story or Iteration the task belongs to. Loaded
// associations win over bare foreign keys.
func (t *Task) BacklogItem() BacklogItem {
	switch {
	case t.Story != nil:
		return t.Story
	case t.StoryID != nil:
		return &Story{ID: *t.StoryID}
	case t.Iteration != nil:
		return t.Iteration
	case t.IterationID != nil:
		return &Iteration{ID: *t.IterationID}
	}
	return nil
}

func (t *Task) ResponsibleUsers() []User { return t.Responsibles }

// PerformedEffort sums the effort of every PerformedWork event.
func (t *Task) PerformedEffort() int64 {
	var total int64
	for _, e := range t.Events {
		if e.EventType == constants.EventPerformedWork {
			total += e.Effort
		}
	}
	return total
}

// WatcherMap indexes the watchers by user id.
func (t *Task) WatcherMap() map[uint]User {
	m := make(map[uint]User, len(t.Watchers))
	for _, w := range t.Watchers {
		m[w.ID] = w
	}
	return m
}

// AddWatcher adds u unless a watcher with the same id exists already.
func (t *Task) AddWatcher(u User) bool {
	if _, ok := t.WatcherMap()[u.ID]; ok {
		return false
	}
	t.Watchers = append(t.Watchers, u)
	return true
}

func (t *Task) RemoveWatcher(userID uint) bool {
	for i, w := range t.Watchers {
		if w.ID == userID {
			t.Watchers = append(t.Watchers[:i], t.Watchers[i+1:]...)
			return true
		}
	}
	return false
}

// UseTemplate replaces the practice allocations with one per practice of
// the template.
func (t *Task) UseTemplate(template *PracticeTemplate) {
	allocations := make([]PracticeAllocation, 0, len(template.Practices))
	for _, p := range template.Practices {
		allocations = append(allocations, PracticeAllocation{
			PracticeID: p.ID,
			TaskID:     t.ID,
		})
	}
	t.Practices = allocations
}
