package contact

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hsati/directory-backend/internal/domain/shared"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, subject, body, replyTo string) error {
	args := m.Called(ctx, subject, body, replyTo)
	return args.Error(0)
}

func TestContactServiceSend(t *testing.T) {
	t.Run("relays the submission with the visitor as reply-to", func(t *testing.T) {
		mailer := new(MockMailer)
		svc := NewService(mailer)

		mailer.On("Send", mock.Anything, "Contact form: Bilal", mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "bilal@example.com") && strings.Contains(body, "Please update our listing.")
		}), "bilal@example.com").Return(nil)

		err := svc.Send(context.Background(), "Bilal", "bilal@example.com", "Please update our listing.")
		require.NoError(t, err)
		mailer.AssertExpectations(t)
	})

	t.Run("rejects an incomplete submission", func(t *testing.T) {
		mailer := new(MockMailer)
		svc := NewService(mailer)

		err := svc.Send(context.Background(), "Bilal", "", "hello")
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeValidation, derr.Code)
		mailer.AssertNotCalled(t, "Send")
	})

	t.Run("delivery failure surfaces as dependency error", func(t *testing.T) {
		mailer := new(MockMailer)
		svc := NewService(mailer)

		mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("dial tcp: connection refused"))

		err := svc.Send(context.Background(), "Bilal", "bilal@example.com", "hello")
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeDependency, derr.Code)
		assert.Contains(t, derr.Message, "mail relay")
	})
}
