package constants

type TaskStatus string

const (
	StatusNotStarted  TaskStatus = "NOT_STARTED"
	StatusStarted     TaskStatus = "STARTED"
	StatusBlocked     TaskStatus = "BLOCKED"
	StatusImplemented TaskStatus = "IMPLEMENTED"
	StatusDone        TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusStarted, StatusBlocked, StatusImplemented, StatusDone:
		return true
	}
	return false
}
