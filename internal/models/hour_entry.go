package model

import "time"

// HourEntry is time logged by a user against either a task or a story.
type HourEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	User         *User     `json:"-"`
	Date         time.Time `gorm:"not null" json:"date"`
	MinutesSpent int64     `gorm:"not null" json:"minutesSpent"`
	Description  string    `json:"description"`
	TaskID       *uint     `gorm:"index" json:"taskId,omitempty"`
	StoryID      *uint     `gorm:"index" json:"storyId,omitempty"`
}
