package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"admindash/internal/domain/entity"
	"admindash/internal/domain/repository"
	"admindash/pkg/errors"
)

type firestoreProgressRepository struct {
	client *firestore.Client
}

func NewFirestoreProgressRepository(client *firestore.Client) repository.ProgressRepository {
	return &firestoreProgressRepository{
		client: client,
	}
}

func (r *firestoreProgressRepository) ListAll(ctx context.Context) ([]*entity.Document, error) {
	docs, err := collectDocuments(r.client.Collection(entity.ProgressCollection).Documents(ctx))
	if err != nil {
		return nil, errors.Internal("", err)
	}
	return docs, nil
}

func (r *firestoreProgressRepository) ListByLevel(ctx context.Context) ([]*entity.Document, error) {
	query := r.client.Collection(entity.ProgressCollection).OrderBy("level", firestore.Desc)

	docs, err := collectDocuments(query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("", err)
	}
	return docs, nil
}

func (r *firestoreProgressRepository) GetByUserID(ctx context.Context, userID string) (*entity.Document, error) {
	return getDocument(ctx, r.client.Collection(entity.ProgressCollection).Doc(userID), "User progress not found")
}

type firestoreDisplayNameChangeRepository struct {
	client *firestore.Client
}

func NewFirestoreDisplayNameChangeRepository(client *firestore.Client) repository.DisplayNameChangeRepository {
	return &firestoreDisplayNameChangeRepository{
		client: client,
	}
}

func (r *firestoreDisplayNameChangeRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Document, error) {
	query := r.client.Collection(entity.DisplayNameChangeCollection).
		OrderBy(entity.FieldTimestamp, firestore.Desc).
		Limit(limit)

	docs, err := collectDocuments(query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("", err)
	}
	return docs, nil
}

type firestoreCollectionLister struct {
	client *firestore.Client
}

func NewFirestoreCollectionLister(client *firestore.Client) repository.CollectionLister {
	return &firestoreCollectionLister{
		client: client,
	}
}

func (r *firestoreCollectionLister) ListCollectionIDs(ctx context.Context) ([]string, error) {
	iter := r.client.Collections(ctx)

	ids := make([]string, 0)
	for {
		col, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("", err)
		}
		ids = append(ids, col.ID)
	}
	return ids, nil
}
