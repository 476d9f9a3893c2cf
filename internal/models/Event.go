package models

// Entity kinds carried by events.
const (
	EntityCompany = "company"
	EntityDriver  = "driver"
)

// Event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event is broadcast to connected clients after a successful write.
// Type is "<entity>.<action>", e.g. "company.deleted".
type Event struct {
	Type    string      `json:"type"`
	Entity  string      `json:"entity"`
	ID      uint        `json:"id"`
	Payload interface{} `json:"payload,omitempty"`
}

// NewEvent builds an event for the given entity and action.
func NewEvent(entity, action string, id uint, payload interface{}) Event {
	return Event{
		Type:    entity + "." + action,
		Entity:  entity,
		ID:      id,
		Payload: payload,
	}
}
