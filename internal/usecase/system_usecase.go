package usecase

import (
	"context"

	"admindash/internal/domain/repository"
	"admindash/pkg/errors"
)

// SystemUseCase backs the connectivity check against the document store.
type SystemUseCase struct {
	collections repository.CollectionLister
}

func NewSystemUseCase(collections repository.CollectionLister) *SystemUseCase {
	return &SystemUseCase{
		collections: collections,
	}
}

func (uc *SystemUseCase) ListCollections(ctx context.Context) ([]string, error) {
	ids, err := uc.collections.ListCollectionIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return ids, nil
}
