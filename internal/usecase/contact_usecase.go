package usecase

import (
	"context"
	"net/http"
	"strings"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/email"
)

type contactUsecase struct {
	emailService *email.EmailService
}

func NewContactUsecase(emailService *email.EmailService) domain.ContactUsecase {
	return &contactUsecase{emailService: emailService}
}

// SendContactMessage validates the visitor message and forwards it to the
// site owner by mail.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return apperror.BadRequest("name, email, subject and message are required")
	}

	if !uc.emailService.IsConfigured() {
		return apperror.New(http.StatusServiceUnavailable, "Contact service temporarily unavailable", nil)
	}

	data := email.ContactEmailData{
		SenderName:  strings.TrimSpace(req.Name),
		SenderEmail: strings.TrimSpace(req.Email),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
	}
	if err := uc.emailService.SendContactEmail(data); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err)
	}
	return nil
}
