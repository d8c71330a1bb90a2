package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// EscalationMessage is the payload carried on the internal escalation topic.
type EscalationMessage struct {
	SessionId   string    `json:"session_id"`
	LastMessage string    `json:"last_message"`
	Strikes     int       `json:"strikes"`
	At          time.Time `json:"at"`
}

type IEscalationPublisher interface {
	PublishEscalation(ctx context.Context, sessionID, lastMessage string, strikes int) error
}

type escalationPublisher struct {
	topicName string
	publisher message.Publisher
}

func NewEscalationPublisher(topicName string, publisher message.Publisher) IEscalationPublisher {
	return &escalationPublisher{
		topicName: topicName,
		publisher: publisher,
	}
}

func (p *escalationPublisher) PublishEscalation(_ context.Context, sessionID, lastMessage string, strikes int) error {
	payload, err := json.Marshal(EscalationMessage{
		SessionId:   sessionID,
		LastMessage: lastMessage,
		Strikes:     strikes,
		At:          time.Now(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return p.publisher.Publish(p.topicName, msg)
}
