package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"admindash/internal/domain/entity"
	"admindash/internal/domain/repository"
	"admindash/pkg/errors"
)

type firestoreAdminRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &firestoreAdminRepository{
		client: client,
	}
}

func (r *firestoreAdminRepository) IsAdmin(ctx context.Context, uid string) (bool, error) {
	snap, err := r.client.Collection(entity.AdminCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("", err)
	}
	if !snap.Exists() {
		return false, nil
	}

	isAdmin, ok := snap.Data()["isAdmin"].(bool)
	return ok && isAdmin, nil
}
