package model

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	LoginName string `gorm:"size:40;index" json:"loginName"`
	FullName  string `gorm:"not null" json:"fullName"`
	Initials  string `gorm:"size:10" json:"initials"`
	Email     string `json:"email"`
	Enabled   bool   `gorm:"not null;default:true" json:"enabled"`
}

type Team struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Users       []User `gorm:"many2many:team_users" json:"users,omitempty"`
}

// MemberIDs returns the ids of the team members in membership order.
func (t *Team) MemberIDs() []uint {
	ids := make([]uint, 0, len(t.Users))
	for _, u := range t.Users {
		ids = append(ids, u.ID)
	}
	return ids
}
