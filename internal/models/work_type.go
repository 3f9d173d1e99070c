package model

type ActivityType struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	WorkTypes   []WorkType `gorm:"constraint:OnDelete:CASCADE" json:"workTypes,omitempty"`
}

type WorkType struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Name           string        `gorm:"not null" json:"name"`
	Description    string        `json:"description"`
	ActivityTypeID uint          `gorm:"not null;index" json:"activityTypeId"`
	ActivityType   *ActivityType `json:"-"`
}
