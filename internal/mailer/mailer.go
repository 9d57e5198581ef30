package mailer

import (
	"fmt"

	"github.com/Sulasulait/coshikowa-agency.com/config"
)

// Message is one transactional email, mirroring what the email API accepts.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers a message and returns the provider's message id.
type Sender interface {
	Send(m Message) (string, error)
}

// Default is the process-wide sender. Tests swap it for a recorder.
var Default Sender

// Init picks a provider from config: the Resend HTTP API when an API key is
// configured, plain SMTP otherwise. With neither, emails are printed to the
// console so local development still shows approval links.
func Init() {
	switch {
	case config.RESEND_API_KEY != "":
		Default = NewResendSender(config.RESEND_API_KEY)
	case config.SMTP_HOST != "":
		Default = NewSMTPSender(config.SMTP_HOST, config.SMTP_PORT, config.SMTP_USER, config.SMTP_PASS)
	default:
		Default = ConsoleSender{}
	}
}

// ConsoleSender logs instead of sending. Development fallback only.
type ConsoleSender struct{}

func (ConsoleSender) Send(m Message) (string, error) {
	fmt.Printf("[mail] to=%s subject=%q (no email provider configured)\n", m.To, m.Subject)
	return "console", nil
}
