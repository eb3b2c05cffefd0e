package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stockology/backend/internal/queue/task"
	"github.com/stockology/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type sendWelcomeEmailProcessor struct {
	workers *worker.Workers
}

func NewSendWelcomeEmailProcessor(workers *worker.Workers) *sendWelcomeEmailProcessor {
	return &sendWelcomeEmailProcessor{
		workers: workers,
	}
}

func (p *sendWelcomeEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendWelcomeEmail
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process send welcome email task json unmarshal failed: %w", err)
	}

	if err = p.workers.EmailSender.SendWelcomeEmail(ctx, data.Email, data.FullName); err != nil {
		return fmt.Errorf("send welcome email failed: %w", err)
	}

	return nil
}
