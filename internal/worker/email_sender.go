package worker

import (
	"context"
	"fmt"

	"github.com/stockology/backend/internal/config"
	emailProvider "github.com/stockology/backend/pkg/email"
)

type emailSender struct {
	sender  emailProvider.Sender
	config  config.EmailConfig
	enabled bool
}

func newEmailSender(sender emailProvider.Sender, config config.EmailConfig) *emailSender {
	return &emailSender{
		enabled: config.Enabled,
		sender:  sender,
		config:  config,
	}
}

type welcomeEmailInput struct {
	FullName string
}

func (s *emailSender) SendWelcomeEmail(_ context.Context, email string, fullName string) error {
	if !s.enabled {
		return nil
	}

	subject := "Welcome to Stockology"

	templateInput := welcomeEmailInput{fullName}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Welcome, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	return s.sender.Send(sendInput)
}
