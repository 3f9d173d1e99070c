package model

type PracticeTemplate struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Practices []Practice `gorm:"foreignKey:TemplateID" json:"practices,omitempty"`
}

type Practice struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	TemplateID  uint   `gorm:"index" json:"templateId"`
}

type PracticeAllocation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PracticeID uint      `gorm:"not null" json:"practiceId"`
	Practice   *Practice `json:"practice,omitempty"`
	TaskID     uint      `gorm:"not null;index" json:"taskId"`
	Done       bool      `json:"done"`
}
