// Package contact relays contact-form submissions to the association inbox.
package contact

import (
	"context"
	"fmt"

	"github.com/hsati/directory-backend/internal/domain/shared"
)

// Mailer is the delivery surface the service needs
type Mailer interface {
	Send(ctx context.Context, subject, body, replyTo string) error
}

// Service validates and relays contact-form submissions
type Service struct {
	mailer Mailer
}

// NewService creates a new contact Service
func NewService(mailer Mailer) *Service {
	return &Service{mailer: mailer}
}

// Send relays one submission. The visitor's address goes into Reply-To so
// the inbox owner can respond directly.
func (s *Service) Send(ctx context.Context, name, email, message string) error {
	if name == "" || email == "" || message == "" {
		return shared.NewValidationError("name, email and message are required")
	}

	subject := fmt.Sprintf("Contact form: %s", name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", name, email, message)

	if err := s.mailer.Send(ctx, subject, body, email); err != nil {
		return shared.NewDependencyError("mail relay", err)
	}
	return nil
}
