package sms

import (
	"context"
	"errors"
)

type SendSMSInput struct {
	To      string
	Message string
}

// Sender delivers a text message to a phone number.
type Sender interface {
	Send(ctx context.Context, input SendSMSInput) error
}

func (s *SendSMSInput) Validate() error {
	if s.To == "" {
		return errors.New("empty to")
	}

	if s.Message == "" {
		return errors.New("empty message")
	}

	return nil
}
