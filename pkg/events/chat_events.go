package events

import "time"

const TypeEscalationTriggered = "CHAT_ESCALATION_TRIGGERED"

// NewEscalationTriggered fires when the frustration monitor hands a session
// over to a human. lastMessage is the normalized text of the triggering turn.
func NewEscalationTriggered(sessionID, lastMessage string, strikes int) Event {
	return BaseEvent{
		Type: TypeEscalationTriggered,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"last_message": lastMessage,
			"strikes":      strikes,
		},
		OccurredAt: time.Now(),
	}
}
