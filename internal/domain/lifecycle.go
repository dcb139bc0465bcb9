package domain

// StatusAction staff-side step of the appointment lifecycle
type StatusAction string

const (
	ActionConfirm    StatusAction = "confirm"     // payment received
	ActionCheckIn    StatusAction = "check-in"    // customer arrived
	ActionInProgress StatusAction = "in-progress" // staff started the service
	ActionDone       StatusAction = "done"        // staff finished the service
	ActionCheckOut   StatusAction = "check-out"   // customer left
)

type transition struct {
	to   AppointmentStatus
	from []AppointmentStatus
}

var transitions = map[StatusAction]transition{
	ActionConfirm:    {to: StatusConfirmed, from: []AppointmentStatus{StatusPending}},
	ActionCheckIn:    {to: StatusArrived, from: []AppointmentStatus{StatusPending, StatusConfirmed}},
	ActionInProgress: {to: StatusOngoing, from: []AppointmentStatus{StatusConfirmed, StatusArrived, StatusInProgress}},
	ActionDone:       {to: StatusDone, from: []AppointmentStatus{StatusArrived, StatusOngoing, StatusInProgress}},
	ActionCheckOut:   {to: StatusDone, from: []AppointmentStatus{StatusArrived, StatusOngoing, StatusInProgress, StatusDone}},
}

// IsValid checks if the action is known
func (a StatusAction) IsValid() bool {
	_, ok := transitions[a]
	return ok
}

// Next returns the status the action leads to from current.
// ok is false when the action is unknown or not allowed from current.
func (a StatusAction) Next(current AppointmentStatus) (next AppointmentStatus, ok bool) {
	t, known := transitions[a]
	if !known {
		return "", false
	}
	for _, s := range t.from {
		if s == current {
			return t.to, true
		}
	}
	return "", false
}
