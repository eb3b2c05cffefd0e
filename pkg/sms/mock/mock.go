package mock_sms

import (
	"context"

	"github.com/stockology/backend/pkg/sms"

	"github.com/stretchr/testify/mock"
)

type SMSSender struct {
	mock.Mock
}

func (m *SMSSender) Send(ctx context.Context, inp sms.SendSMSInput) error {
	args := m.Called(inp)

	return args.Error(0)
}
