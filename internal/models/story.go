package model

type Story struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Description  string     `json:"description"`
	State        string     `gorm:"size:20;not null;default:NOT_STARTED" json:"state"`
	StoryPoints  *int       `json:"storyPoints,omitempty"`
	IterationID  *uint      `gorm:"index" json:"iterationId,omitempty"`
	Iteration    *Iteration `json:"-"`
	ProjectID    *uint      `gorm:"index" json:"projectId,omitempty"`
	Project      *Project   `json:"-"`
	Responsibles []User     `gorm:"many2many:story_responsibles" json:"responsibles,omitempty"`
	Tasks        []Task     `gorm:"foreignKey:StoryID" json:"tasks,omitempty"`
}

// Backlog returns the iteration or project the story is planned into, or
// nil when neither is known.
func (s *Story) Backlog() Backlog {
	switch {
	case s.Iteration != nil:
		return s.Iteration
	case s.IterationID != nil:
		return &Iteration{ID: *s.IterationID}
	case s.Project != nil:
		return s.Project
	case s.ProjectID != nil:
		return &Project{ID: *s.ProjectID}
	}
	return nil
}

func (s *Story) ResponsibleUsers() []User { return s.Responsibles }

func (s *Story) backlogItem() {}
