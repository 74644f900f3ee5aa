package repository

import (
	"context"

	"admindash/internal/domain/entity"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) (string, error)
	// ListRecent returns activities newest first. An empty userID lists all users.
	ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Document, error)
}
