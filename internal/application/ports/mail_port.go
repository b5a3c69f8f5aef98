package ports

import "context"

// Attachment archivo adjunto de un correo.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// Email mensaje a enviar por el relay SMTP.
type Email struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// DeliveryResult metadatos de un envío exitoso.
type DeliveryResult struct {
	MessageID  string
	PreviewURL string
}

// Mailer puerto de salida para envío de correo. Un solo intento, sin reintentos ni cola.
type Mailer interface {
	Send(ctx context.Context, email Email) (*DeliveryResult, error)
}
