package repository

import (
	"context"
	"time"

	"admindash/internal/domain/entity"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) (string, error)
	List(ctx context.Context, limit int) ([]*entity.Document, error)
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	// UpdateStatus sets status and a server-assigned updatedAt.
	UpdateStatus(ctx context.Context, id, status string) error
	// Restore writes data under id with a server-assigned restoredAt.
	Restore(ctx context.Context, id string, data map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type RecycleBinRepository interface {
	// Put writes data under id with a server-assigned recycledAt and the given expiry.
	Put(ctx context.Context, id string, data map[string]interface{}, expiresAt time.Time) error
	// ListByRecycledAt returns every entry, most recently recycled first.
	ListByRecycledAt(ctx context.Context) ([]*entity.Document, error)
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	Delete(ctx context.Context, id string) error
	// DeleteMany removes all ids in a single batched write.
	DeleteMany(ctx context.Context, ids []string) error
}
