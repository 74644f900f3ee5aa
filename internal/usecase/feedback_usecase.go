package usecase

import (
	"context"
	"time"

	"admindash/internal/domain/entity"
	"admindash/internal/domain/repository"
	"admindash/pkg/errors"
	"admindash/pkg/logger"
)

// FeedbackUseCase manages the feedback lifecycle. Resolution moves a feedback
// document into the recycle bin, restoration moves it back. Each move is a
// write followed by a delete with no rollback, so a failed delete leaves the
// document in both collections. Nothing repairs that automatically.
type FeedbackUseCase struct {
	feedbackRepo repository.FeedbackRepository
	recycleRepo  repository.RecycleBinRepository
	retention    time.Duration
	now          func() time.Time
}

func NewFeedbackUseCase(
	feedbackRepo repository.FeedbackRepository,
	recycleRepo repository.RecycleBinRepository,
	retention time.Duration,
) *FeedbackUseCase {
	if retention <= 0 {
		retention = entity.DefaultRecycleRetention
	}
	return &FeedbackUseCase{
		feedbackRepo: feedbackRepo,
		recycleRepo:  recycleRepo,
		retention:    retention,
		now:          time.Now,
	}
}

type SubmitFeedbackInput struct {
	UserID    string
	Message   string
	UserName  string
	UserEmail string
}

func (uc *FeedbackUseCase) Submit(ctx context.Context, input SubmitFeedbackInput) (string, error) {
	if input.UserID == "" || input.Message == "" {
		return "", errors.BadRequest("userId and message are required.", nil)
	}

	userName := input.UserName
	if userName == "" {
		userName = entity.DefaultFeedbackUserName
	}

	feedback := &entity.Feedback{
		UserID:    input.UserID,
		Message:   input.Message,
		UserName:  userName,
		UserEmail: input.UserEmail,
		Status:    entity.FeedbackStatusNew,
	}

	id, err := uc.feedbackRepo.Create(ctx, feedback)
	if err != nil {
		return "", errors.Wrap(err)
	}
	return id, nil
}

func (uc *FeedbackUseCase) List(ctx context.Context) ([]map[string]interface{}, error) {
	docs, err := uc.feedbackRepo.List(ctx, entity.FeedbackListLimit)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return documentsWithKey(docs, "id"), nil
}

func (uc *FeedbackUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	if !entity.IsAdminSettableStatus(status) {
		return errors.BadRequest("Invalid status. Must be: new or read. Use /resolve endpoint for resolved status.", nil)
	}
	if id == "" {
		return errors.BadRequest("feedbackId is required.", nil)
	}

	if err := uc.feedbackRepo.UpdateStatus(ctx, id, status); err != nil {
		return errors.Wrap(err)
	}
	return nil
}

func (uc *FeedbackUseCase) Resolve(ctx context.Context, id string) error {
	doc, err := uc.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return errors.Wrap(err)
	}

	data := doc.Clone()
	data[entity.FieldStatus] = entity.FeedbackStatusResolved

	if err := uc.recycleRepo.Put(ctx, id, data, uc.now().Add(uc.retention)); err != nil {
		return errors.Wrap(err)
	}

	if err := uc.feedbackRepo.Delete(ctx, id); err != nil {
		logger.Warn("Feedback %s copied to recycle bin but not removed from feedback: %v", id, err)
		return errors.Wrap(err)
	}
	return nil
}

// ListRecycled returns recycle-bin entries that have not expired yet, most
// recently recycled first. Expired entries found along the way are deleted
// in one batch before returning.
func (uc *FeedbackUseCase) ListRecycled(ctx context.Context) ([]map[string]interface{}, error) {
	docs, err := uc.recycleRepo.ListByRecycledAt(ctx)
	if err != nil {
		return nil, errors.Wrap(err)
	}

	valid, expired := uc.partitionRecycled(docs, uc.now())
	if len(expired) > 0 {
		if err := uc.recycleRepo.DeleteMany(ctx, expired); err != nil {
			return nil, errors.Wrap(err)
		}
		logger.Info("Purged %d expired recycle bin entries", len(expired))
	}

	out := make([]map[string]interface{}, 0, len(valid))
	for _, doc := range valid {
		item := doc.Fields("id")
		item[entity.FieldRecycledAt] = isoField(doc, entity.FieldRecycledAt)
		out = append(out, item)
	}
	return out, nil
}

// PurgeExpired deletes expired recycle-bin entries without listing the rest.
// It is the scheduled counterpart of the sweep done by ListRecycled.
func (uc *FeedbackUseCase) PurgeExpired(ctx context.Context) (int, error) {
	docs, err := uc.recycleRepo.ListByRecycledAt(ctx)
	if err != nil {
		return 0, errors.Wrap(err)
	}

	_, expired := uc.partitionRecycled(docs, uc.now())
	if len(expired) == 0 {
		return 0, nil
	}
	if err := uc.recycleRepo.DeleteMany(ctx, expired); err != nil {
		return 0, errors.Wrap(err)
	}
	return len(expired), nil
}

func (uc *FeedbackUseCase) Restore(ctx context.Context, id string) error {
	doc, err := uc.recycleRepo.GetByID(ctx, id)
	if err != nil {
		return errors.Wrap(err)
	}

	data := doc.Clone(entity.FieldRecycledAt, entity.FieldExpiresAt)
	data[entity.FieldStatus] = entity.FeedbackStatusRead

	if err := uc.feedbackRepo.Restore(ctx, id, data); err != nil {
		return errors.Wrap(err)
	}

	if err := uc.recycleRepo.Delete(ctx, id); err != nil {
		logger.Warn("Feedback %s restored but still present in recycle bin: %v", id, err)
		return errors.Wrap(err)
	}
	return nil
}

func (uc *FeedbackUseCase) partitionRecycled(docs []*entity.Document, now time.Time) ([]*entity.Document, []string) {
	valid := make([]*entity.Document, 0, len(docs))
	var expired []string

	for _, doc := range docs {
		expiresAt, ok := uc.expiresAt(doc)
		if ok && expiresAt.Before(now) {
			expired = append(expired, doc.ID)
			continue
		}
		valid = append(valid, doc)
	}
	return valid, expired
}

// expiresAt prefers the stored expiry and falls back to recycledAt plus the
// retention period. Entries carrying neither never expire.
func (uc *FeedbackUseCase) expiresAt(doc *entity.Document) (time.Time, bool) {
	if t, ok := doc.Time(entity.FieldExpiresAt); ok {
		return t, true
	}
	if t, ok := doc.Time(entity.FieldRecycledAt); ok {
		return t.Add(uc.retention), true
	}
	return time.Time{}, false
}
