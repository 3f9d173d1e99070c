package model

// Backlog is a container stories are planned into: an Iteration or a Project.
type Backlog interface {
	BacklogID() uint
	OwningProject() *Project
}

// BacklogItem is the container a Task belongs to: a Story or an Iteration.
type BacklogItem interface {
	backlogItem()
}

// Assignable is anything that carries an explicit set of responsible users.
type Assignable interface {
	ResponsibleUsers() []User
}

type Project struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `json:"description"`
	Assignees   []User      `gorm:"many2many:project_assignments" json:"assignees,omitempty"`
	Iterations  []Iteration `gorm:"foreignKey:ParentID" json:"iterations,omitempty"`
}

func (p *Project) BacklogID() uint { return p.ID }

func (p *Project) OwningProject() *Project { return p }

type Iteration struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Description string   `json:"description"`
	ParentID    uint     `gorm:"not null;index" json:"parentId"`
	Parent      *Project `json:"parent,omitempty"`
	Stories     []Story  `gorm:"foreignKey:IterationID" json:"stories,omitempty"`
	Tasks       []Task   `gorm:"foreignKey:IterationID" json:"tasks,omitempty"`
}

func (i *Iteration) BacklogID() uint { return i.ID }

// OwningProject returns the parent project, falling back to an id-only
// reference when the parent was not loaded.
func (i *Iteration) OwningProject() *Project {
	if i.Parent != nil {
		return i.Parent
	}
	if i.ParentID == 0 {
		return nil
	}
	return &Project{ID: i.ParentID}
}

func (i *Iteration) backlogItem() {}
