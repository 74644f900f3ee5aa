package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"admindash/internal/domain/entity"
	"admindash/internal/domain/repository"
	"admindash/pkg/errors"
)

type firestoreActivityRepository struct {
	client *firestore.Client
}

func NewFirestoreActivityRepository(client *firestore.Client) repository.ActivityRepository {
	return &firestoreActivityRepository{
		client: client,
	}
}

func (r *firestoreActivityRepository) Create(ctx context.Context, activity *entity.Activity) (string, error) {
	ref, _, err := r.client.Collection(entity.ActivityCollection).Add(ctx, activity)
	if err != nil {
		return "", errors.Internal("", err)
	}
	return ref.ID, nil
}

func (r *firestoreActivityRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Document, error) {
	query := r.client.Collection(entity.ActivityCollection).Query
	if userID != "" {
		query = query.Where("userId", "==", userID)
	}
	query = query.OrderBy(entity.FieldTimestamp, firestore.Desc).Limit(limit)

	docs, err := collectDocuments(query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("", err)
	}
	return docs, nil
}
