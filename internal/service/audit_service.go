package service

import (
	"context"

	"todo_api/internal/domain"
	"todo_api/internal/logger"
)

const defaultActivityLimit = 50

// AuditService handles audit logging
type AuditService struct {
	repo AuditStore
}

// NewAuditService creates a new audit service
func NewAuditService(repo AuditStore) *AuditService {
	return &AuditService{repo: repo}
}

// Log creates a new audit log entry. Failures are logged, never returned.
func (s *AuditService) Log(ctx context.Context, userID int64, action, ip, userAgent string, details map[string]any) {
	entry := &domain.AuditLog{
		Action:    action,
		Details:   details,
		IP:        ip,
		UserAgent: userAgent,
	}
	if userID > 0 {
		entry.UserID = &userID
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		logger.FromContext(ctx).Error("failed to create audit log", "error", err, "action", action, "user_id", userID)
	}
}

// LogLoginFailed records a rejected login attempt for an email.
// userID is 0 when the email matched no account.
func (s *AuditService) LogLoginFailed(ctx context.Context, userID int64, email, ip, userAgent string) {
	s.Log(ctx, userID, domain.AuditActionLoginFailed, ip, userAgent, map[string]any{"email": email})
}

// GetUserAuditLogs returns the newest audit logs for a user
func (s *AuditService) GetUserAuditLogs(ctx context.Context, userID int64, limit int) ([]*domain.AuditLog, error) {
	if limit <= 0 || limit > defaultActivityLimit {
		limit = defaultActivityLimit
	}
	return s.repo.GetByUserID(ctx, userID, limit)
}
