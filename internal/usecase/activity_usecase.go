package usecase

import (
	"context"

	"admindash/internal/domain/entity"
	"admindash/internal/domain/repository"
	"admindash/pkg/errors"
)

type ActivityUseCase struct {
	activityRepo repository.ActivityRepository
}

func NewActivityUseCase(activityRepo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{
		activityRepo: activityRepo,
	}
}

type CreateActivityInput struct {
	UserID  string
	Type    string
	Details string
}

func (uc *ActivityUseCase) Create(ctx context.Context, input CreateActivityInput) (string, error) {
	if input.UserID == "" || input.Type == "" {
		return "", errors.BadRequest("userId and type are required.", nil)
	}

	activity := &entity.Activity{
		UserID:  input.UserID,
		Type:    input.Type,
		Details: input.Details,
	}

	id, err := uc.activityRepo.Create(ctx, activity)
	if err != nil {
		return "", errors.Wrap(err)
	}
	return id, nil
}

func (uc *ActivityUseCase) ListRecent(ctx context.Context) ([]map[string]interface{}, error) {
	return uc.list(ctx, "")
}

func (uc *ActivityUseCase) ListByUser(ctx context.Context, userID string) ([]map[string]interface{}, error) {
	if userID == "" {
		return nil, errors.BadRequest("userId is required.", nil)
	}
	return uc.list(ctx, userID)
}

func (uc *ActivityUseCase) list(ctx context.Context, userID string) ([]map[string]interface{}, error) {
	docs, err := uc.activityRepo.ListRecent(ctx, userID, entity.ActivityListLimit)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return documentsWithKey(docs, "id"), nil
}
