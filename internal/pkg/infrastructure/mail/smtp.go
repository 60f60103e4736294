package mail

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
}

type smtpProvider struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPProvider(cfg SMTPConfig) Provider {
	return &smtpProvider{
		cfg:      cfg,
		sendMail: smtp.SendMail,
	}
}

func (p *smtpProvider) Name() string {
	return "smtp"
}

func (p *smtpProvider) Configured() bool {
	return p.cfg.Host != ""
}

func (p *smtpProvider) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	var auth smtp.Auth
	if p.cfg.User != "" && p.cfg.Password != "" {
		auth = smtp.PlainAuth("", p.cfg.User, p.cfg.Password, p.cfg.Host)
	}

	addr := net.JoinHostPort(p.cfg.Host, p.cfg.Port)

	if err := p.sendMail(addr, auth, msg.From, msg.To, compose(msg)); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", addr, err)
	}

	return nil
}

func compose(msg Message) []byte {
	var b strings.Builder

	b.WriteString("From: " + msg.From + "\r\n")
	b.WriteString("To: " + strings.Join(msg.To, ", ") + "\r\n")
	b.WriteString("Subject: " + encodeHeader(msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	b.WriteString("\r\n")

	return []byte(b.String())
}

var headerBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func encodeHeader(value string) string {
	return mime.QEncoding.Encode("utf-8", headerBreaks.Replace(value))
}
