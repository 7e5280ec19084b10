package notification

import "context"

// Message is the payload accepted by the email gateway.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	IsHTML  bool   `json:"isHtml"`
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}
