package domain

import "context"

// ContactRequest is a visitor message submitted through the public contact
// form and forwarded to the site owner by mail.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ContactUsecase interface {
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
