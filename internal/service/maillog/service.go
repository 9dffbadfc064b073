// Package maillog exposes the notification audit log.
package maillog

import (
	"context"
	"fmt"

	"github.com/licensure/licensure/internal/model"
)

type mailLogRepo interface {
	List(ctx context.Context) ([]model.MailLog, error)
}

// Service reads the mail log.
type Service struct {
	repo mailLogRepo
}

// NewService creates a mail log service.
func NewService(repo mailLogRepo) *Service {
	return &Service{repo: repo}
}

// List returns all log entries newest first.
func (s *Service) List(ctx context.Context) ([]model.MailLog, error) {
	logs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mail logs: %w", err)
	}

	return logs, nil
}
