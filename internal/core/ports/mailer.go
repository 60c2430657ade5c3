package ports

import "context"

// Message is a plain-text email.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Mailer delivers a message or returns why it could not.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
