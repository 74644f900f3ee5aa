package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"admindash/internal/domain/entity"
	"admindash/internal/domain/repository"
	"admindash/pkg/errors"
)

type firestoreFeedbackRepository struct {
	client *firestore.Client
}

func NewFirestoreFeedbackRepository(client *firestore.Client) repository.FeedbackRepository {
	return &firestoreFeedbackRepository{
		client: client,
	}
}

func (r *firestoreFeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) (string, error) {
	ref, _, err := r.client.Collection(entity.FeedbackCollection).Add(ctx, feedback)
	if err != nil {
		return "", errors.Internal("", err)
	}
	return ref.ID, nil
}

func (r *firestoreFeedbackRepository) List(ctx context.Context, limit int) ([]*entity.Document, error) {
	query := r.client.Collection(entity.FeedbackCollection).
		OrderBy(entity.FieldTimestamp, firestore.Desc).
		Limit(limit)

	docs, err := collectDocuments(query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("", err)
	}
	return docs, nil
}

func (r *firestoreFeedbackRepository) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	return getDocument(ctx, r.client.Collection(entity.FeedbackCollection).Doc(id), "Feedback not found")
}

func (r *firestoreFeedbackRepository) UpdateStatus(ctx context.Context, id, statusValue string) error {
	_, err := r.client.Collection(entity.FeedbackCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: entity.FieldStatus, Value: statusValue},
		{Path: entity.FieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Feedback not found", err)
		}
		return errors.Internal("", err)
	}
	return nil
}

func (r *firestoreFeedbackRepository) Restore(ctx context.Context, id string, data map[string]interface{}) error {
	doc := copyFields(data)
	doc[entity.FieldRestoredAt] = firestore.ServerTimestamp

	if _, err := r.client.Collection(entity.FeedbackCollection).Doc(id).Set(ctx, doc); err != nil {
		return errors.Internal("", err)
	}
	return nil
}

func (r *firestoreFeedbackRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(entity.FeedbackCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("", err)
	}
	return nil
}

type firestoreRecycleBinRepository struct {
	client *firestore.Client
}

func NewFirestoreRecycleBinRepository(client *firestore.Client) repository.RecycleBinRepository {
	return &firestoreRecycleBinRepository{
		client: client,
	}
}

func (r *firestoreRecycleBinRepository) Put(ctx context.Context, id string, data map[string]interface{}, expiresAt time.Time) error {
	doc := copyFields(data)
	doc[entity.FieldRecycledAt] = firestore.ServerTimestamp
	doc[entity.FieldExpiresAt] = expiresAt

	if _, err := r.client.Collection(entity.RecycleBinCollection).Doc(id).Set(ctx, doc); err != nil {
		return errors.Internal("", err)
	}
	return nil
}

func (r *firestoreRecycleBinRepository) ListByRecycledAt(ctx context.Context) ([]*entity.Document, error) {
	query := r.client.Collection(entity.RecycleBinCollection).OrderBy(entity.FieldRecycledAt, firestore.Desc)

	docs, err := collectDocuments(query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("", err)
	}
	return docs, nil
}

func (r *firestoreRecycleBinRepository) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	return getDocument(ctx, r.client.Collection(entity.RecycleBinCollection).Doc(id), "Recycled feedback not found")
}

func (r *firestoreRecycleBinRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(entity.RecycleBinCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("", err)
	}
	return nil
}

func (r *firestoreRecycleBinRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteInBatches(ctx, r.client, entity.RecycleBinCollection, ids)
}

func copyFields(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	return out
}
