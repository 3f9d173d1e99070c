package dto

import (
	"agilefant.com/agilefant/internal/constants"
	model "agilefant.com/agilefant/internal/models"
)

// ResponsibleContainer pairs a responsible user with whether the user is
// assigned to the owning project.
type ResponsibleContainer struct {
	User      model.User `json:"user"`
	InProject bool       `json:"inProject"`
}

type TaskTO struct {
	ID              uint                   `json:"id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	Status          constants.TaskStatus   `json:"status"`
	Priority        constants.Priority     `json:"priority"`
	EffortEstimate  *int64                 `json:"effortEstimate,omitempty"`
	PerformedEffort int64                  `json:"performedEffort"`
	EffortSpent     int64                  `json:"effortSpent"`
	StoryID         *uint                  `json:"storyId,omitempty"`
	IterationID     *uint                  `json:"iterationId,omitempty"`
	UserData        []ResponsibleContainer `json:"userData"`
}

type StoryTO struct {
	ID               uint                   `json:"id"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	State            string                 `json:"state"`
	StoryPoints      *int                   `json:"storyPoints,omitempty"`
	EffortSpent      int64                  `json:"effortSpent"`
	TotalEffortSpent int64                  `json:"totalEffortSpent"`
	PerformedEffort  int64                  `json:"performedEffort"`
	Tasks            []TaskTO               `json:"tasks"`
	UserData         []ResponsibleContainer `json:"userData"`
}

// AutocompleteDataNode feeds UI autocomplete widgets. IDList is nil for
// entities without related ids.
type AutocompleteDataNode struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	BaseClassName string `json:"baseClassName"`
	IDList        []uint `json:"idList"`
}
