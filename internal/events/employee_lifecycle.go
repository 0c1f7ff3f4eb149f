package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const (
	EventEmployeeCreated = "employee_created"
	EventEmployeeUpdated = "employee_updated"
)

type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	ActorID    string    `json:"actor_id"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}
