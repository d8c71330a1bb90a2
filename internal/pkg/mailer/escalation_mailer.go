package mailer

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type IEscalationMailer interface {
	SendEscalationAlert(sessionID, lastMessage string, strikes int) error
}

type escalationMailer struct {
	dialer      *gomail.Dialer
	senderEmail string
	toEmail     string
}

// NewEscalationMailer wires the SMTP dialer used for handover alerts. An
// empty toEmail disables sending, the notifier treats that as a no-op sink.
func NewEscalationMailer(host string, port int, username, password, senderEmail, toEmail string) IEscalationMailer {
	d := gomail.NewDialer(host, port, username, password)
	return &escalationMailer{
		dialer:      d,
		senderEmail: senderEmail,
		toEmail:     toEmail,
	}
}

func (s *escalationMailer) SendEscalationAlert(sessionID, lastMessage string, strikes int) error {
	if s.toEmail == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Chat escalation: session %s", sessionID))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>A chat session needs a human</h2>
			<p>The assistant escalated after repeated frustration signals.</p>
			<p><strong>Session:</strong> %s</p>
			<p><strong>Strikes:</strong> %d</p>
			<p><strong>Last message:</strong> %s</p>
			<p>Please pick this up from the support dashboard.</p>
		</div>
	`, html.EscapeString(sessionID), strikes, html.EscapeString(lastMessage))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send escalation alert for %s: %v\n", sessionID, err)
		return err
	}

	fmt.Printf("[MAILER] Escalation alert sent for session %s\n", sessionID)
	return nil
}
