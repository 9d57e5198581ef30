package mailer

import (
	"strconv"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers through a plain SMTP relay when no Resend key is set.
type SMTPSender struct {
	host string
	port int
	user string
	pass string
}

func NewSMTPSender(host, port, user, pass string) *SMTPSender {
	p, err := strconv.Atoi(port)
	if err != nil {
		p = 587
	}
	return &SMTPSender{host: host, port: p, user: user, pass: pass}
}

func (s *SMTPSender) Send(m Message) (string, error) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.HTML)

	d := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	if err := d.DialAndSend(msg); err != nil {
		return "", err
	}
	return "smtp", nil
}
