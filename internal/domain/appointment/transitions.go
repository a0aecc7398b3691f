package appointment

// transitionMap lists every legal status edge. Same-status "transitions" are
// deliberately absent so duplicate client retries surface as failures instead
// of silently succeeding.
var transitionMap = map[Status][]Status{
	StatusPending:      {StatusConfirmed, StatusCancelled},
	StatusConfirmed:    {StatusInProgress, StatusCancelled},
	StatusInProgress:   {StatusWaitingParts, StatusCancelled},
	StatusWaitingParts: {StatusInProgress, StatusCompleted},
	StatusCompleted:    {},
	StatusCancelled:    {},
}

func ValidTransition(from, to Status) bool {
	allowed, ok := transitionMap[from]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == to {
			return true
		}
	}
	return false
}

// assignableStatuses are the states in which an employee may be (re)assigned.
var assignableStatuses = []Status{StatusPending, StatusConfirmed}

func Assignable(s Status) bool {
	for _, status := range assignableStatuses {
		if status == s {
			return true
		}
	}
	return false
}
