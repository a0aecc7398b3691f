package appointment

type Status string

const (
	StatusPending      Status = "pending"
	StatusConfirmed    Status = "confirmed"
	StatusInProgress   Status = "in_progress"
	StatusWaitingParts Status = "waiting_parts"
	StatusCompleted    Status = "completed"
	StatusCancelled    Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress,
		StatusWaitingParts, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status or timer mutation is
// permitted. Note appending is the only exception.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type ServiceType string

const (
	ServiceMaintenance ServiceType = "maintenance"
	ServiceRepair      ServiceType = "repair"
	ServiceInspection  ServiceType = "inspection"
	ServiceDiagnostic  ServiceType = "diagnostic"
	ServiceBodywork    ServiceType = "bodywork"
)

func (t ServiceType) String() string {
	return string(t)
}

func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceMaintenance, ServiceRepair, ServiceInspection, ServiceDiagnostic, ServiceBodywork:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}
