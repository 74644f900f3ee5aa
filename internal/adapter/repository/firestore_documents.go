package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"admindash/internal/domain/entity"
	"admindash/pkg/errors"
)

// maxBatchWrites is the per-commit write limit of a Firestore WriteBatch.
const maxBatchWrites = 500

func collectDocuments(iter *firestore.DocumentIterator) ([]*entity.Document, error) {
	defer iter.Stop()

	docs := make([]*entity.Document, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, entity.NewDocument(snap.Ref.ID, snap.Data()))
	}
	return docs, nil
}

func getDocument(ctx context.Context, ref *firestore.DocumentRef, notFoundMessage string) (*entity.Document, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound(notFoundMessage, err)
		}
		return nil, errors.Internal("", err)
	}
	if !snap.Exists() {
		return nil, errors.NotFound(notFoundMessage, nil)
	}
	return entity.NewDocument(snap.Ref.ID, snap.Data()), nil
}

func deleteInBatches(ctx context.Context, client *firestore.Client, collection string, ids []string) error {
	for start := 0; start < len(ids); start += maxBatchWrites {
		end := start + maxBatchWrites
		if end > len(ids) {
			end = len(ids)
		}

		batch := client.Batch()
		for _, id := range ids[start:end] {
			batch.Delete(client.Collection(collection).Doc(id))
		}
		if _, err := batch.Commit(ctx); err != nil {
			return errors.Internal("", err)
		}
	}
	return nil
}
