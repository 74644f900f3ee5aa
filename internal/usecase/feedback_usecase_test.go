package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admindash/internal/domain/entity"
	apperrors "admindash/pkg/errors"
)

type feedbackFixture struct {
	uc       *FeedbackUseCase
	feedback *fakeFeedbackRepo
	recycle  *fakeRecycleRepo
	now      time.Time
}

func newFeedbackFixture() *feedbackFixture {
	f := &feedbackFixture{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	clock := func() time.Time { return f.now }

	f.feedback = newFakeFeedbackRepo(clock)
	f.recycle = newFakeRecycleRepo(clock)
	f.uc = NewFeedbackUseCase(f.feedback, f.recycle, 0)
	f.uc.now = clock
	return f
}

func TestFeedbackSubmitAppliesDefaults(t *testing.T) {
	f := newFeedbackFixture()

	id, err := f.uc.Submit(context.Background(), SubmitFeedbackInput{UserID: "u1", Message: "hi"})
	require.NoError(t, err)

	doc, err := f.feedback.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", doc.Data["userName"])
	assert.Equal(t, "", doc.Data["userEmail"])
	assert.Equal(t, entity.FeedbackStatusNew, doc.Data["status"])
}

func TestFeedbackSubmitRequiresMessage(t *testing.T) {
	f := newFeedbackFixture()

	_, err := f.uc.Submit(context.Background(), SubmitFeedbackInput{UserID: "u1"})

	assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
	assert.Empty(t, f.feedback.store.docs)
}

func TestFeedbackUpdateStatusRejectsResolved(t *testing.T) {
	f := newFeedbackFixture()
	id, _ := f.uc.Submit(context.Background(), SubmitFeedbackInput{UserID: "u1", Message: "hi"})

	err := f.uc.UpdateStatus(context.Background(), id, entity.FeedbackStatusResolved)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "/resolve")
	assert.Equal(t, entity.FeedbackStatusNew, f.feedback.store.docs[id]["status"])
}

func TestFeedbackUpdateStatusMarksRead(t *testing.T) {
	f := newFeedbackFixture()
	id, _ := f.uc.Submit(context.Background(), SubmitFeedbackInput{UserID: "u1", Message: "hi"})

	require.NoError(t, f.uc.UpdateStatus(context.Background(), id, entity.FeedbackStatusRead))

	assert.Equal(t, entity.FeedbackStatusRead, f.feedback.store.docs[id]["status"])
	assert.Contains(t, f.feedback.store.docs[id], entity.FieldUpdatedAt)
}

func TestFeedbackUpdateStatusMissingDocument(t *testing.T) {
	f := newFeedbackFixture()

	err := f.uc.UpdateStatus(context.Background(), "nope", entity.FeedbackStatusRead)

	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestFeedbackResolveMovesToRecycleBin(t *testing.T) {
	f := newFeedbackFixture()
	ctx := context.Background()
	id, _ := f.uc.Submit(ctx, SubmitFeedbackInput{UserID: "u1", Message: "broken button"})

	require.NoError(t, f.uc.Resolve(ctx, id))

	recycled, err := f.uc.ListRecycled(ctx)
	require.NoError(t, err)
	require.Len(t, recycled, 1)
	assert.Equal(t, id, recycled[0]["id"])
	assert.Equal(t, entity.FeedbackStatusResolved, recycled[0]["status"])
	assert.Equal(t, "2025-03-01T12:00:00.000Z", recycled[0]["recycledAt"])
	assert.Equal(t, f.now.Add(30*24*time.Hour), recycled[0]["expiresAt"])

	items, err := f.uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFeedbackResolveMissingDocument(t *testing.T) {
	f := newFeedbackFixture()

	err := f.uc.Resolve(context.Background(), "missing")

	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
	assert.Empty(t, f.recycle.store.docs)
}

func TestFeedbackResolveKeepsCopyWhenDeleteFails(t *testing.T) {
	f := newFeedbackFixture()
	ctx := context.Background()
	id, _ := f.uc.Submit(ctx, SubmitFeedbackInput{UserID: "u1", Message: "hi"})
	f.feedback.deleteErr = errors.New("unavailable")

	err := f.uc.Resolve(ctx, id)

	assert.True(t, apperrors.Is(err, apperrors.CodeInternal))
	assert.Contains(t, f.recycle.store.docs, id)
	assert.Contains(t, f.feedback.store.docs, id)
}

func TestFeedbackListRecycledSweepsExpired(t *testing.T) {
	f := newFeedbackFixture()
	f.recycle.store.docs["old"] = map[string]interface{}{
		"message":    "stale",
		"recycledAt": f.now.Add(-31 * 24 * time.Hour),
	}
	f.recycle.store.docs["fresh"] = map[string]interface{}{
		"message":    "recent",
		"recycledAt": f.now.Add(-time.Hour),
		"expiresAt":  f.now.Add(29 * 24 * time.Hour),
	}
	f.recycle.store.docs["explicit"] = map[string]interface{}{
		"message":    "expired by stored expiry",
		"recycledAt": f.now.Add(-2 * time.Hour),
		"expiresAt":  f.now.Add(-time.Minute),
	}
	f.recycle.store.docs["undated"] = map[string]interface{}{
		"message": "no timestamps",
	}

	items, err := f.uc.ListRecycled(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item["id"].(string))
	}
	assert.Equal(t, []string{"fresh", "undated"}, ids)
	assert.Nil(t, items[1]["recycledAt"])

	require.Len(t, f.recycle.deleteCalls, 1, "expired entries are removed in one batch")
	assert.ElementsMatch(t, []string{"old", "explicit"}, f.recycle.deleteCalls[0])
	assert.NotContains(t, f.recycle.store.docs, "old")
	assert.NotContains(t, f.recycle.store.docs, "explicit")
}

func TestFeedbackListRecycledSkipsDeleteWhenNothingExpired(t *testing.T) {
	f := newFeedbackFixture()
	f.recycle.store.docs["fresh"] = map[string]interface{}{"recycledAt": f.now}

	_, err := f.uc.ListRecycled(context.Background())

	require.NoError(t, err)
	assert.Empty(t, f.recycle.deleteCalls)
}

func TestFeedbackPurgeExpired(t *testing.T) {
	f := newFeedbackFixture()
	f.recycle.store.docs["old"] = map[string]interface{}{"recycledAt": f.now.Add(-40 * 24 * time.Hour)}
	f.recycle.store.docs["fresh"] = map[string]interface{}{"recycledAt": f.now}

	purged, err := f.uc.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, purged)
	assert.Contains(t, f.recycle.store.docs, "fresh")
}

func TestFeedbackRestoreAfterResolve(t *testing.T) {
	f := newFeedbackFixture()
	ctx := context.Background()
	id, _ := f.uc.Submit(ctx, SubmitFeedbackInput{UserID: "u1", Message: "hi", UserName: "Ana"})
	require.NoError(t, f.uc.Resolve(ctx, id))

	require.NoError(t, f.uc.Restore(ctx, id))

	restored := f.feedback.store.docs[id]
	require.NotNil(t, restored)
	assert.Equal(t, entity.FeedbackStatusRead, restored["status"])
	assert.Equal(t, "Ana", restored["userName"])
	assert.NotContains(t, restored, entity.FieldRecycledAt)
	assert.NotContains(t, restored, entity.FieldExpiresAt)
	assert.Contains(t, restored, entity.FieldRestoredAt)
	assert.NotContains(t, f.recycle.store.docs, id)
}

func TestFeedbackRestoreMissingEntry(t *testing.T) {
	f := newFeedbackFixture()

	err := f.uc.Restore(context.Background(), "missing")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Equal(t, "Recycled feedback not found", appErr.Message)
}

func TestNewFeedbackUseCaseCustomRetention(t *testing.T) {
	f := newFeedbackFixture()
	uc := NewFeedbackUseCase(f.feedback, f.recycle, 7*24*time.Hour)
	uc.now = func() time.Time { return f.now }
	f.recycle.store.docs["week-old"] = map[string]interface{}{"recycledAt": f.now.Add(-8 * 24 * time.Hour)}

	items, err := uc.ListRecycled(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}
