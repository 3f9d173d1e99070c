package services

import (
	dto "agilefant.com/agilefant/internal/data_models"
	model "agilefant.com/agilefant/internal/models"
)

// resolveResponsibles wraps every responsible of a in a container flagged
// with project membership. Membership is an id test against assignedUsers;
// a nil list confirms nobody. Duplicate responsibles collapse to the first.
func resolveResponsibles(a model.Assignable, assignedUsers []model.User) []dto.ResponsibleContainer {
	inProject := make(map[uint]struct{}, len(assignedUsers))
	for _, u := range assignedUsers {
		inProject[u.ID] = struct{}{}
	}

	responsibles := a.ResponsibleUsers()
	seen := make(map[uint]struct{}, len(responsibles))
	containers := make([]dto.ResponsibleContainer, 0, len(responsibles))
	for _, u := range responsibles {
		if _, dup := seen[u.ID]; dup {
			continue
		}
		seen[u.ID] = struct{}{}
		_, ok := inProject[u.ID]
		containers = append(containers, dto.ResponsibleContainer{User: u, InProject: ok})
	}
	return containers
}
