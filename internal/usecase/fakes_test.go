package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"admindash/internal/domain/entity"
	"admindash/pkg/errors"
	"admindash/pkg/logger"
)

func init() {
	logger.SetOutput(io.Discard)
}

type fakeActivityRepo struct {
	created   []*entity.Activity
	docs      []*entity.Document
	gotUserID string
	gotLimit  int
	err       error
}

func (f *fakeActivityRepo) Create(ctx context.Context, activity *entity.Activity) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, activity)
	return fmt.Sprintf("act-%d", len(f.created)), nil
}

func (f *fakeActivityRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Document, error) {
	f.gotUserID = userID
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

// memStore is a tiny in-memory collection keyed by document id.
type memStore struct {
	docs map[string]map[string]interface{}
}

func newMemStore() *memStore {
	return &memStore{docs: map[string]map[string]interface{}{}}
}

func (m *memStore) get(id, notFound string) (*entity.Document, error) {
	data, ok := m.docs[id]
	if !ok {
		return nil, errors.NotFound(notFound, nil)
	}
	copied := make(map[string]interface{}, len(data))
	for k, v := range data {
		copied[k] = v
	}
	return entity.NewDocument(id, copied), nil
}

func (m *memStore) sortedBy(field string) []*entity.Document {
	docs := make([]*entity.Document, 0, len(m.docs))
	for id := range m.docs {
		doc, _ := m.get(id, "")
		docs = append(docs, doc)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		ti, _ := docs[i].Time(field)
		tj, _ := docs[j].Time(field)
		if ti.Equal(tj) {
			return docs[i].ID < docs[j].ID
		}
		return ti.After(tj)
	})
	return docs
}

type fakeFeedbackRepo struct {
	store     *memStore
	now       func() time.Time
	nextID    int
	deleteErr error
}

func newFakeFeedbackRepo(now func() time.Time) *fakeFeedbackRepo {
	return &fakeFeedbackRepo{store: newMemStore(), now: now}
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, feedback *entity.Feedback) (string, error) {
	f.nextID++
	id := fmt.Sprintf("fb-%d", f.nextID)
	f.store.docs[id] = map[string]interface{}{
		"userId":    feedback.UserID,
		"message":   feedback.Message,
		"userName":  feedback.UserName,
		"userEmail": feedback.UserEmail,
		"status":    feedback.Status,
		"timestamp": f.now(),
	}
	return id, nil
}

func (f *fakeFeedbackRepo) List(ctx context.Context, limit int) ([]*entity.Document, error) {
	docs := f.store.sortedBy(entity.FieldTimestamp)
	if len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (f *fakeFeedbackRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	return f.store.get(id, "Feedback not found")
}

func (f *fakeFeedbackRepo) UpdateStatus(ctx context.Context, id, status string) error {
	data, ok := f.store.docs[id]
	if !ok {
		return errors.NotFound("Feedback not found", nil)
	}
	data[entity.FieldStatus] = status
	data[entity.FieldUpdatedAt] = f.now()
	return nil
}

func (f *fakeFeedbackRepo) Restore(ctx context.Context, id string, data map[string]interface{}) error {
	doc := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		doc[k] = v
	}
	doc[entity.FieldRestoredAt] = f.now()
	f.store.docs[id] = doc
	return nil
}

func (f *fakeFeedbackRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.store.docs, id)
	return nil
}

type fakeRecycleRepo struct {
	store       *memStore
	now         func() time.Time
	deleteCalls [][]string
}

func newFakeRecycleRepo(now func() time.Time) *fakeRecycleRepo {
	return &fakeRecycleRepo{store: newMemStore(), now: now}
}

func (f *fakeRecycleRepo) Put(ctx context.Context, id string, data map[string]interface{}, expiresAt time.Time) error {
	doc := make(map[string]interface{}, len(data)+2)
	for k, v := range data {
		doc[k] = v
	}
	doc[entity.FieldRecycledAt] = f.now()
	doc[entity.FieldExpiresAt] = expiresAt
	f.store.docs[id] = doc
	return nil
}

func (f *fakeRecycleRepo) ListByRecycledAt(ctx context.Context) ([]*entity.Document, error) {
	return f.store.sortedBy(entity.FieldRecycledAt), nil
}

func (f *fakeRecycleRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	return f.store.get(id, "Recycled feedback not found")
}

func (f *fakeRecycleRepo) Delete(ctx context.Context, id string) error {
	delete(f.store.docs, id)
	return nil
}

func (f *fakeRecycleRepo) DeleteMany(ctx context.Context, ids []string) error {
	f.deleteCalls = append(f.deleteCalls, ids)
	for _, id := range ids {
		delete(f.store.docs, id)
	}
	return nil
}

type fakeProgressRepo struct {
	docs []*entity.Document
	err  error
}

func (f *fakeProgressRepo) ListAll(ctx context.Context) ([]*entity.Document, error) {
	return f.docs, f.err
}

func (f *fakeProgressRepo) ListByLevel(ctx context.Context) ([]*entity.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	docs := append([]*entity.Document(nil), f.docs...)
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Number("level") > docs[j].Number("level")
	})
	return docs, nil
}

func (f *fakeProgressRepo) GetByUserID(ctx context.Context, userID string) (*entity.Document, error) {
	for _, doc := range f.docs {
		if doc.ID == userID {
			return doc, nil
		}
	}
	return nil, errors.NotFound("User progress not found", nil)
}

type fakeNameChanges struct {
	docs     []*entity.Document
	gotLimit int
}

func (f *fakeNameChanges) ListRecent(ctx context.Context, limit int) ([]*entity.Document, error) {
	f.gotLimit = limit
	return f.docs, nil
}

type fakeIdentity struct {
	users  []*entity.AuthUser
	gotMax int
	err    error
}

func (f *fakeIdentity) ListUsers(ctx context.Context, max int) ([]*entity.AuthUser, error) {
	f.gotMax = max
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}
