package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/application/ports"
	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

const (
	defaultReportSubject = "Inventory Report"
	defaultReportBody    = "Please find attached the inventory report."
)

// ReportUseCase genera el reporte PDF del inventario y lo envía por correo.
type ReportUseCase struct {
	repo      repository.InventoryRepository
	generator ports.InventoryReportGenerator
	mailer    ports.Mailer
	log       zerolog.Logger
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso del reporte.
func NewReportUseCase(
	repo repository.InventoryRepository,
	generator ports.InventoryReportGenerator,
	mailer ports.Mailer,
	log zerolog.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		repo:      repo,
		generator: generator,
		mailer:    mailer,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GeneratePDF arma el PDF con todo el inventario.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context) ([]byte, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInventoryReport(ctx, items)
}

// ReportFilename nombre del adjunto para la fecha actual: inventory-report-YYYY-MM-DD.pdf.
func (uc *ReportUseCase) ReportFilename() string {
	return fmt.Sprintf("inventory-report-%s.pdf", uc.now().Format("2006-01-02"))
}

// SendReportEmail genera el PDF y lo envía como adjunto. Subject y body vacíos toman los valores por defecto.
func (uc *ReportUseCase) SendReportEmail(ctx context.Context, in dto.SendInventoryEmailRequest) (*dto.SendInventoryEmailResponse, error) {
	to := strings.TrimSpace(in.Email)
	if to == "" {
		return nil, fmt.Errorf("email es requerido: %w", domain.ErrInvalidInput)
	}
	pdf, err := uc.GeneratePDF(ctx)
	if err != nil {
		return nil, fmt.Errorf("error sending inventory report: %w", err)
	}
	subject := in.Subject
	if subject == "" {
		subject = defaultReportSubject
	}
	body := in.Body
	if body == "" {
		body = defaultReportBody
	}
	result, err := uc.mailer.Send(ctx, ports.Email{
		To:      to,
		Subject: subject,
		Body:    body,
		Attachments: []ports.Attachment{{
			Filename:    uc.ReportFilename(),
			Content:     pdf,
			ContentType: "application/pdf",
		}},
	})
	if err != nil {
		uc.log.Error().Err(err).Str("to", to).Msg("envío de reporte de inventario falló")
		return nil, fmt.Errorf("error sending inventory report: %w", err)
	}
	uc.log.Info().Str("to", to).Str("message_id", result.MessageID).Msg("reporte de inventario enviado")
	return &dto.SendInventoryEmailResponse{
		Message:    "Inventory report sent successfully",
		Success:    true,
		MessageID:  result.MessageID,
		PreviewURL: result.PreviewURL,
	}, nil
}
