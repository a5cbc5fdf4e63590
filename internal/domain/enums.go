package domain

type CycleStatus string

const (
	CycleRunning   CycleStatus = "running"
	CycleCompleted CycleStatus = "completed"
	CycleAbandoned CycleStatus = "abandoned"
)

// IsValid reports whether s is a known cycle status.
func (s CycleStatus) IsValid() bool {
	switch s {
	case CycleRunning, CycleCompleted, CycleAbandoned:
		return true
	}
	return false
}

// IsFinished reports whether a cycle in status s will no longer change.
func (s CycleStatus) IsFinished() bool {
	return s == CycleCompleted || s == CycleAbandoned
}
