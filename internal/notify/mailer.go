package notify

import (
	gomail "gopkg.in/gomail.v2"
)

// Message is one outbound mail. Attachments arrive as regular files; embeds
// become cid: references in the HTML body, keyed by their base filename.
type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []string
	Embeds      []string
}

// Mailer sends a single message. Batch behavior (skip-and-continue per
// recipient) lives with the callers, not here.
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer delivers over an authenticated SMTP relay with STARTTLS.
type SMTPMailer struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, User: user, Pass: pass, From: from}
}

func (s *SMTPMailer) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	for _, path := range msg.Attachments {
		m.Attach(path)
	}
	for _, path := range msg.Embeds {
		m.Embed(path)
	}

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	return d.DialAndSend(m)
}
