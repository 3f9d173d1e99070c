package constants

type TaskEventType string

const (
	EventPerformedWork   TaskEventType = "PerformedWork"
	EventEstimateChanged TaskEventType = "EstimateChanged"
	EventStatusChanged   TaskEventType = "StatusChanged"
	EventComment         TaskEventType = "Comment"
)

// Stable entity discriminators exposed to autocomplete clients.
const (
	UserClassName = "fi.hut.soberit.agilefant.model.User"
	TeamClassName = "fi.hut.soberit.agilefant.model.Team"
)
