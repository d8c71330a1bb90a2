package service

import (
	"context"
	"encoding/json"
	"log"

	"keelie-chatbot-be/internal/pkg/mailer"
	"keelie-chatbot-be/pkg/events"
	pkgNats "keelie-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type INotifierService interface {
	Consume(ctx context.Context) error
}

// notifierService drains the escalation topic: every escalation becomes an
// email to the support inbox and, when NATS is wired, a fan-out event for
// other consumers. natsPub may be nil.
type notifierService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	mailer    mailer.IEscalationMailer
	natsPub   *pkgNats.Publisher
}

func NewNotifierService(
	pubSub *gochannel.GoChannel,
	topicName string,
	escalationMailer mailer.IEscalationMailer,
	natsPub *pkgNats.Publisher,
) INotifierService {
	return &notifierService{
		pubSub:    pubSub,
		topicName: topicName,
		mailer:    escalationMailer,
		natsPub:   natsPub,
	}
}

func (ns *notifierService) Consume(ctx context.Context) error {
	messages, err := ns.pubSub.Subscribe(ctx, ns.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ns.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ns *notifierService) processMessage(ctx context.Context, msg *message.Message) {
	var payload EscalationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal escalation message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing escalation for session %s (strikes=%d)", payload.SessionId, payload.Strikes)

	if ns.mailer != nil {
		if err := ns.mailer.SendEscalationAlert(payload.SessionId, payload.LastMessage, payload.Strikes); err != nil {
			log.Printf("[ERROR] Failed to send escalation email for %s: %v", payload.SessionId, err)
			// keep going, email failure must not block the NATS fan-out
		}
	}

	if ns.natsPub != nil {
		event := events.NewEscalationTriggered(payload.SessionId, payload.LastMessage, payload.Strikes)
		if err := ns.natsPub.Publish(ctx, event); err != nil {
			log.Printf("[ERROR] Failed to publish escalation event to NATS: %v", err)
		}
	}

	msg.Ack()
}
