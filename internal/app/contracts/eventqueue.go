package contracts

import "context"

const (
	EventSchemaCreated  = "schema.created"
	EventSchemaConflict = "schema.conflict"
)

// ScheduleEvent is the payload published to the schedule events queue after
// a schema commit. Downstream consumers (notifications, audit) key off Type.
type ScheduleEvent struct {
	Type        string   `json:"type"`
	PhysicianID string   `json:"physician_id"`
	CenterID    string   `json:"center_id"`
	SchemaIDs   []string `json:"schema_ids,omitempty"`
	// ConflictKinds lists the kind of every conflict the operator confirmed
	// through, empty for a clean commit.
	ConflictKinds []string `json:"conflict_kinds,omitempty"`
	RequestID     string   `json:"request_id,omitempty"`
}

type EventQueue interface {
	Publish(ctx context.Context, event ScheduleEvent) error
}
