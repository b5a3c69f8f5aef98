// Package mail envía correo por un relay SMTP con gomail.
package mail

import (
	"context"
	"fmt"
	"io"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/catalogo-inventario/internal/application/ports"
	"github.com/jhoicas/catalogo-inventario/pkg/config"
)

var _ ports.Mailer = (*GomailSender)(nil)

// GomailSender implementa ports.Mailer. Un intento por correo; el error del relay se propaga tal cual.
type GomailSender struct {
	from   string
	domain string
	send   func(m *gomail.Message) error
}

// NewGomailSender construye el adaptador contra el relay configurado (STARTTLS en 587).
func NewGomailSender(cfg config.MailConfig) *GomailSender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	return newSender(cfg.From, func(m *gomail.Message) error { return dialer.DialAndSend(m) })
}

// NewGomailSenderWith usa un gomail.Sender ya abierto (tests, conexiones reutilizadas).
func NewGomailSenderWith(from string, s gomail.Sender) *GomailSender {
	return newSender(from, func(m *gomail.Message) error { return gomail.Send(s, m) })
}

func newSender(from string, send func(m *gomail.Message) error) *GomailSender {
	domain := "localhost"
	if addr, err := mail.ParseAddress(from); err == nil {
		if at := strings.LastIndex(addr.Address, "@"); at >= 0 {
			domain = addr.Address[at+1:]
		}
	}
	return &GomailSender{from: from, domain: domain, send: send}
}

// Send arma el mensaje en texto plano con sus adjuntos y lo entrega al relay.
func (s *GomailSender) Send(ctx context.Context, email ports.Email) (*ports.DeliveryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), s.domain)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/plain", email.Body)
	for _, a := range email.Attachments {
		content := a.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}))
		}
		m.Attach(a.Filename, settings...)
	}

	if err := s.send(m); err != nil {
		return nil, fmt.Errorf("smtp: %w", err)
	}
	return &ports.DeliveryResult{MessageID: messageID}, nil
}
