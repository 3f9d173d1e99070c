package constants

type Priority string

const (
	PriorityUndefined Priority = "UNDEFINED"
	PriorityBlocker   Priority = "BLOCKER"
	PriorityCritical  Priority = "CRITICAL"
	PriorityMajor     Priority = "MAJOR"
	PriorityMinor     Priority = "MINOR"
	PriorityTrivial   Priority = "TRIVIAL"
)
