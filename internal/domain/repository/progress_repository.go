package repository

import (
	"context"

	"admindash/internal/domain/entity"
)

type ProgressRepository interface {
	ListAll(ctx context.Context) ([]*entity.Document, error)
	ListByLevel(ctx context.Context) ([]*entity.Document, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Document, error)
}

type DisplayNameChangeRepository interface {
	ListRecent(ctx context.Context, limit int) ([]*entity.Document, error)
}

type CollectionLister interface {
	ListCollectionIDs(ctx context.Context) ([]string, error)
}
