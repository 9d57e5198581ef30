package mailer

import (
	"github.com/resend/resend-go/v2"
)

// ResendSender sends through the Resend transactional email API.
type ResendSender struct {
	client *resend.Client
}

func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

func (s *ResendSender) Send(m Message) (string, error) {
	sent, err := s.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.From,
		To:      []string{m.To},
		Subject: m.Subject,
		Html:    m.HTML,
	})
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}
